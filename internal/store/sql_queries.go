package store

const (
	createCar = `INSERT INTO cars (reg_nr, make, model, year, color)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, reg_nr, make, model, year, color, created_at;`

	getCarByID = `SELECT id, reg_nr, make, model, year, color, created_at
    FROM cars
    WHERE id = $1;`

	getAllCars = `SELECT id, reg_nr, make, model, year, color, created_at
    FROM cars
    ORDER BY id;`

	deleteCarByID = `DELETE FROM cars
    WHERE id = $1;`

	createSuggestion = `INSERT INTO task_suggestions (car_id, title, description, time_use)
    VALUES ($1, $2, $3, $4)
    RETURNING id, car_id, title, description, time_use;`

	getSuggestionsByCarID = `SELECT id, car_id, title, description, time_use
    FROM task_suggestions
    WHERE car_id = $1
    ORDER BY id;`

	deleteSuggestionByID = `DELETE FROM task_suggestions
    WHERE id = $1;`

	createTask = `INSERT INTO tasks (car_id, title, description, estimated_time_minutes, status, completed, suggestion_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, car_id, title, description, estimated_time_minutes, status, completed, suggestion_id, created_at;`

	taskTitleExists = `SELECT EXISTS (
        SELECT 1 FROM tasks WHERE car_id = $1 AND title = $2
    );`

	deleteTaskByID = `DELETE FROM tasks
    WHERE id = $1;`
)
