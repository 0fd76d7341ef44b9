package repository

// Seed loads the sample catalog: three owners, two law firms, three
// attorneys and four trademarks. The catalog lives only in process
// memory and is rebuilt on every start.
func Seed(s *Store) {
	nike := s.CreateOwner("Nike, Inc.", "One Bowerman Drive, Beaverton, OR 97005")
	apple := s.CreateOwner("Apple Inc.", "One Apple Park Way, Cupertino, CA 95014")
	microsoft := s.CreateOwner("Microsoft Corporation", "One Microsoft Way, Redmond, WA 98052")

	firm1 := s.CreateLawFirm("Trademark Legal Partners LLP", "123 Law Street, New York, NY 10001")
	firm2 := s.CreateLawFirm("Intellectual Property Associates", "456 IP Avenue, San Francisco, CA 94107")

	att1 := s.CreateAttorney("John Smith", &firm1.ID)
	att2 := s.CreateAttorney("Sarah Johnson", &firm2.ID)
	att3 := s.CreateAttorney("Michael Davis", &firm1.ID)

	s.CreateTrademark(NewTrademark{
		Name:             "NIKE",
		SerialNumber:     "76123456",
		Description:      "The word mark NIKE and the Swoosh design logo for athletic footwear and apparel",
		FilingDate:       strPtr("2022-01-15"),
		RegistrationDate: strPtr("2022-06-20"),
		StatusID:         1, // Registered
		OwnerID:          nike.ID,
		AttorneyID:       &att1.ID,
		LawFirmID:        &firm1.ID,
		Classifications:  []int{25, 28}, // Clothing, Sports equipment
	})

	s.CreateTrademark(NewTrademark{
		Name:             "APPLE",
		SerialNumber:     "86789012",
		Description:      "The word mark APPLE and Apple logo for computers, software and related goods",
		FilingDate:       strPtr("2021-05-10"),
		RegistrationDate: strPtr("2021-11-25"),
		StatusID:         1, // Registered
		OwnerID:          apple.ID,
		AttorneyID:       &att2.ID,
		LawFirmID:        &firm2.ID,
		Classifications:  []int{9, 42}, // Electronics, Software
	})

	s.CreateTrademark(NewTrademark{
		Name:            "MICROSOFT",
		SerialNumber:    "75345678",
		Description:     "The word mark MICROSOFT for computer software and hardware",
		FilingDate:      strPtr("2020-09-30"),
		StatusID:        2, // Pending
		OwnerID:         microsoft.ID,
		AttorneyID:      &att3.ID,
		LawFirmID:       &firm1.ID,
		Classifications: []int{9, 42},
	})

	s.CreateTrademark(NewTrademark{
		Name:             "AIR JORDAN",
		SerialNumber:     "77654321",
		Description:      "The word mark AIR JORDAN for athletic footwear",
		FilingDate:       strPtr("2019-08-12"),
		RegistrationDate: strPtr("2020-03-05"),
		StatusID:         1, // Registered
		OwnerID:          nike.ID,
		AttorneyID:       &att1.ID,
		LawFirmID:        &firm1.ID,
		Classifications:  []int{25}, // Clothing
	})
}

func strPtr(s string) *string { return &s }
