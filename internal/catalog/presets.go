package catalog

// EquipmentPreset is a named bundle of available equipment shown during
// program setup.
type EquipmentPreset struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Equipment   []string `json:"equipment"`
}

// EquipmentPresets lists the selectable equipment bundles in display order.
var EquipmentPresets = []EquipmentPreset{
	{
		Key:         "bodyweight",
		Label:       "Bodyweight Only",
		Description: "No equipment needed. Train anywhere.",
		Equipment:   []string{"Bodyweight"},
	},
	{
		Key:         "homeBasic",
		Label:       "Home Gym (Basic)",
		Description: "Dumbbells, resistance bands, maybe a pull-up bar.",
		Equipment:   []string{"Bodyweight", "Dumbbell", "Resistance Band", "Kettlebell"},
	},
	{
		Key:         "homeComplete",
		Label:       "Home Gym (Complete)",
		Description: "Barbell, dumbbells, bench, rack.",
		Equipment:   []string{"Bodyweight", "Barbell", "Dumbbell", "Kettlebell", "Resistance Band", "EZ Bar"},
	},
	{
		Key:         "commercialGym",
		Label:       "Full Commercial Gym",
		Description: "Access to everything: barbells, cables, machines, etc.",
		Equipment: []string{
			"Bodyweight", "Barbell", "Dumbbell", "Cable", "Machine",
			"Kettlebell", "EZ Bar", "Smith Machine", "Resistance Band",
			"Trap Bar", "Medicine Ball", "Ab Wheel", "Stability Ball",
			"Suspension", "Sled",
		},
	},
}

// PresetByKey looks up an equipment preset by its key.
func PresetByKey(key string) (EquipmentPreset, bool) {
	for _, p := range EquipmentPresets {
		if p.Key == key {
			return p, true
		}
	}
	return EquipmentPreset{}, false
}
