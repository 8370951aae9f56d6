package store

// SeedDefaults loads the standard detailing packages the marketing site
// lists. It only runs against an empty catalog so restarts with preloaded
// fixtures keep their data.
func (s *Store) SeedDefaults() {
	if len(s.ServicePackages()) > 0 {
		return
	}
	defaults := []ServicePackageInput{
		{Name: "Basic Wash", Description: "Exterior hand wash and dry", Price: 25, Duration: 30, IsActive: true},
		{Name: "Premium Wash", Description: "Hand wash, wheels, tire shine and wax", Price: 45, Duration: 60, IsActive: true},
		{Name: "Interior Detailing", Description: "Vacuum, shampoo, leather and trim care", Price: 120, Duration: 150, IsActive: true},
		{Name: "Exterior Detailing", Description: "Clay bar, machine polish and sealant", Price: 150, Duration: 180, IsActive: true},
		{Name: "Full Detailing", Description: "Complete interior and exterior detail", Price: 250, Duration: 300, IsActive: true},
		{Name: "Ceramic Coating", Description: "Multi-layer ceramic paint protection", Price: 600, Duration: 480, IsActive: true},
	}
	for _, p := range defaults {
		s.AddServicePackage(p)
	}
}
