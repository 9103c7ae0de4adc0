package suggest

// FallbackSuggestions returns the fixed list served when generation fails
// for any reason. The content is deterministic and identical across calls;
// a fresh slice is allocated each time so callers may modify the result.
func FallbackSuggestions() []Suggestion {
	oilDesc := "Anbefales hvert 15 000 km eller årlig"
	brakeDesc := "Kontroller klosser, skiver og bremsevæske"
	tireDesc := "Sjekk mønsterdybde og juster sporvidde ved behov"

	return []Suggestion{
		{Title: "Oljeskift og filterbytte", Description: &oilDesc, TimeUse: 10},
		{Title: "Bremsesjekk", Description: &brakeDesc, TimeUse: 20},
		{Title: "Dekk og hjulstilling", Description: &tireDesc, TimeUse: 200},
	}
}
