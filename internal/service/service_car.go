package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/internal/store"
	"github.com/bilhold/bilhold/models"
)

// regNrPattern matches Norwegian plate numbers: two letters followed by
// five digits. Input is case-insensitive; plates are stored upper-cased.
var regNrPattern = regexp.MustCompile(`^[A-Za-z]{2}[0-9]{5}$`)

type carService struct {
	carRepository store.CarRepository
	registry      VehicleRegistry

	logger *logger.Logger
}

func NewCarService(carRepository store.CarRepository, registry VehicleRegistry, logger *logger.Logger) CarService {
	return &carService{
		carRepository: carRepository,
		registry:      registry,
		logger:        logger,
	}
}

// RegisterCar validates the plate number, enriches the car from the
// vehicle registry and persists it. Validation runs before the registry is
// contacted, so an invalid plate never causes an outbound call. Enrichment
// failure is swallowed: the car is stored with sentinel attributes and the
// failure only shows up in the log.
func (c *carService) RegisterCar(ctx context.Context, request models.RegisterCarRequest) (models.Car, error) {
	log := logger.FromContext(ctx)

	regNr := strings.ToUpper(strings.TrimSpace(request.RegNr))
	if !regNrPattern.MatchString(regNr) {
		return models.Car{}, fmt.Errorf("%w: %q does not match two letters followed by five digits", ErrInvalidRegNr, request.RegNr)
	}

	car := models.Car{RegNr: regNr}

	attrs, err := c.registry.LookupVehicle(ctx, regNr)
	if err != nil {
		log.Warn().Err(err).Str("reg_nr", regNr).Msg("vehicle enrichment failed, registering car with unknown attributes")
		car.Make = models.UnknownAttribute
		car.Model = models.UnknownAttribute
		car.Year = 0
		unknownColor := models.UnknownAttribute
		car.Color = &unknownColor
	} else {
		car.Make = orUnknown(attrs.Make)
		car.Model = orUnknown(attrs.Model)
		car.Year = attrs.Year
		color := orUnknown(attrs.Color)
		car.Color = &color
	}

	return c.carRepository.CreateCar(ctx, car)
}

func (c *carService) ListCars(ctx context.Context) ([]models.Car, error) {
	return c.carRepository.ListCars(ctx)
}

func (c *carService) GetCar(ctx context.Context, carID int64) (models.Car, error) {
	return c.carRepository.GetCar(ctx, carID)
}

func (c *carService) DeleteCar(ctx context.Context, carID int64) error {
	return c.carRepository.DeleteCar(ctx, carID)
}

// orUnknown substitutes the sentinel for attributes the registry left
// empty, so enrichment never produces blank columns.
func orUnknown(value string) string {
	if value == "" {
		return models.UnknownAttribute
	}
	return value
}
