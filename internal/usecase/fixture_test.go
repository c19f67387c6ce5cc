package usecase

import "query-router/internal/domain/entity"

// testRecord mirrors the record shipped with the binary.
func testRecord() *entity.KnowledgeRecord {
	return &entity.KnowledgeRecord{
		Profile: entity.Profile{
			Name:             "JP Constructions",
			Founder:          "Mr. J. Periyasamy",
			FoundedYear:      2003,
			YearsOfOperation: 22,
			License:          "Class AAA Construction License",
			Certifications:   []string{"ISO 9001:2015", "ISO 14001:2015", "OHSAS 18001"},
			Mission:          "To deliver quality construction projects with innovation and reliability",
			Vision:           "To be the most trusted construction company in the region",
			CoreValues:       []string{"Quality First", "Customer Focus", "Innovation", "Integrity"},
			Locations:        []string{"Chennai", "Bangalore", "Hyderabad", "Coimbatore"},
		},
		Portfolio: entity.Portfolio{
			Ongoing:  6,
			Upcoming: 4,
			Categories: []entity.ProjectSegment{
				{
					Category:  entity.CategoryResidential,
					Completed: 28,
					Examples: []entity.ProjectExample{
						{Name: "JP Elite Homes", Year: 2023, Units: 120, Location: "Chennai", Features: "Smart Homes, Green Building"},
						{Name: "Prakash Paradise", Year: 2022, Units: 80, Location: "Bangalore", Features: "Luxury Apartments"},
						{Name: "Green Valley Residency", Year: 2021, Units: 60, Location: "Hyderabad", Features: "Eco-Friendly, Solar Powered"},
					},
				},
				{
					Category:  entity.CategoryCommercial,
					Completed: 7,
					Examples: []entity.ProjectExample{
						{Name: "Car Showroom", Year: 2023, Floors: 15, Area: "100,000 sq.ft"},
						{Name: "Clinic", Year: 2022, Floors: 12, Area: "250,000 sq.ft"},
						{Name: "Flats", Year: 2021, Area: "50,000 sq.ft"},
					},
				},
				{Category: entity.CategoryIndustrial, Completed: 5},
			},
		},
		Team: []entity.RoleHeadcount{
			{Role: "Architects", Count: 3, Focus: "Design innovation and creativity", Group: "Technical Leadership"},
			{Role: "Civil Engineers", Count: 5, Focus: "Structural excellence and precision", Group: "Technical Leadership"},
			{Role: "Project Managers", Count: 5, Focus: "Timely delivery and coordination", Group: "Technical Leadership"},
			{Role: "Site Engineers", Count: 3, Focus: "Quality execution and supervision", Group: "Execution Excellence"},
			{Role: "Interior Designers", Count: 7, Focus: "Aesthetic perfection", Group: "Execution Excellence"},
			{Role: "Quality Controllers", Count: 5, Focus: "Highest standards maintenance", Group: "Execution Excellence"},
			{Role: "Safety Officers", Count: 5, Focus: "Zero accident commitment", Group: "Support & Safety"},
			{Role: "Support Staff", Count: 40, Focus: "Seamless operations", Group: "Support & Safety"},
		},
		Services: []entity.ServiceCategory{
			{Category: entity.CategoryResidential, Title: "Residential Construction", Items: []string{
				"Apartment Complexes", "Individual Villas", "Township Projects", "Row Houses", "Farm Houses",
			}},
			{Category: entity.CategoryCommercial, Title: "Commercial Projects", Items: []string{
				"Office Buildings", "Shopping Malls", "IT Parks", "Hotels & Resorts", "Educational Institutions",
			}},
			{Category: entity.CategoryIndustrial, Title: "Industrial Facilities", Items: []string{
				"Factories & Plants", "Warehouses", "Industrial Parks", "Logistics Centers",
			}},
			{Category: entity.CategorySpecialized, Title: "Specialized Services", Items: []string{
				"Interior Design & Execution", "Renovation & Retrofit", "Project Management",
				"Construction Consultancy", "Green Building Solutions",
			}},
		},
		Technology: []string{
			"BIM (Building Information Modeling)", "Green Building Technologies", "Smart Home Integration",
			"Project Management Software", "Quality Control Systems",
		},
		Awards: []string{
			"Best Construction Company 2023", "Excellence in Residential Projects 2022",
			"Green Building Award 2021", "Safety First Award 2020",
		},
		Contact: entity.Contact{
			HeadOffice: "12/768, Balaji Nagar 1st Street, Veerabathra Nagar, Vengaivasal, Medavakkam, Chennai 100",
			Phone:      "+91-9884627570",
			Mobile:     "+91-9444803194",
			Email:      "info@jpconstructions.com",
			Website:    "www.jpconstructions.com",
			Hours:      "Monday to Saturday: 9:00 AM - 6:00 PM",
		},
	}
}
