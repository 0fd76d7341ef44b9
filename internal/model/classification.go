package model

// Classification is one of the 45 fixed international classes a
// trademark may be registered under.  The color tag is a
// presentation hint for class badges.
type Classification struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Classifications is the full fixed class catalog (Nice classes 1-45).
var Classifications = []Classification{
	{ID: 1, Name: "Class 1: Chemicals", Color: "blue"},
	{ID: 2, Name: "Class 2: Paints", Color: "red"},
	{ID: 3, Name: "Class 3: Cosmetics & Cleaning Preparations", Color: "pink"},
	{ID: 4, Name: "Class 4: Lubricants & Fuels", Color: "gray"},
	{ID: 5, Name: "Class 5: Pharmaceuticals", Color: "green"},
	{ID: 6, Name: "Class 6: Metal Goods", Color: "slate"},
	{ID: 7, Name: "Class 7: Machinery", Color: "zinc"},
	{ID: 8, Name: "Class 8: Hand Tools", Color: "stone"},
	{ID: 9, Name: "Class 9: Electrical & Scientific Apparatus", Color: "blue"},
	{ID: 10, Name: "Class 10: Medical Apparatus", Color: "sky"},
	{ID: 11, Name: "Class 11: Environmental Control Apparatus", Color: "cyan"},
	{ID: 12, Name: "Class 12: Vehicles", Color: "teal"},
	{ID: 13, Name: "Class 13: Firearms", Color: "red"},
	{ID: 14, Name: "Class 14: Jewelry", Color: "amber"},
	{ID: 15, Name: "Class 15: Musical Instruments", Color: "yellow"},
	{ID: 16, Name: "Class 16: Paper Goods & Printed Matter", Color: "lime"},
	{ID: 17, Name: "Class 17: Rubber Goods", Color: "emerald"},
	{ID: 18, Name: "Class 18: Leather Goods", Color: "orange"},
	{ID: 19, Name: "Class 19: Non-metallic Building Materials", Color: "stone"},
	{ID: 20, Name: "Class 20: Furniture & Articles Not Otherwise Classified", Color: "amber"},
	{ID: 21, Name: "Class 21: Housewares & Glass", Color: "indigo"},
	{ID: 22, Name: "Class 22: Cordage & Fibers", Color: "violet"},
	{ID: 23, Name: "Class 23: Yarns & Threads", Color: "purple"},
	{ID: 24, Name: "Class 24: Fabrics", Color: "fuchsia"},
	{ID: 25, Name: "Class 25: Clothing", Color: "pink"},
	{ID: 26, Name: "Class 26: Fancy Goods", Color: "rose"},
	{ID: 27, Name: "Class 27: Floor Coverings", Color: "sky"},
	{ID: 28, Name: "Class 28: Toys & Sporting Goods", Color: "blue"},
	{ID: 29, Name: "Class 29: Meats & Processed Foods", Color: "red"},
	{ID: 30, Name: "Class 30: Staple Foods", Color: "amber"},
	{ID: 31, Name: "Class 31: Natural Agricultural Products", Color: "green"},
	{ID: 32, Name: "Class 32: Light Beverages", Color: "sky"},
	{ID: 33, Name: "Class 33: Wines & Spirits", Color: "purple"},
	{ID: 34, Name: "Class 34: Smokers' Articles", Color: "gray"},
	{ID: 35, Name: "Class 35: Advertising & Business", Color: "zinc"},
	{ID: 36, Name: "Class 36: Insurance & Financial", Color: "green"},
	{ID: 37, Name: "Class 37: Building Construction & Repair", Color: "orange"},
	{ID: 38, Name: "Class 38: Telecommunications", Color: "yellow"},
	{ID: 39, Name: "Class 39: Transportation & Storage", Color: "amber"},
	{ID: 40, Name: "Class 40: Treatment of Materials", Color: "lime"},
	{ID: 41, Name: "Class 41: Education & Entertainment", Color: "indigo"},
	{ID: 42, Name: "Class 42: Computer & Scientific", Color: "purple"},
	{ID: 43, Name: "Class 43: Hotels & Restaurants", Color: "orange"},
	{ID: 44, Name: "Class 44: Medical, Beauty & Agricultural", Color: "emerald"},
	{ID: 45, Name: "Class 45: Personal & Legal", Color: "blue"},
}

// ClassificationByID returns the catalog entry for the given class ID,
// or nil when the ID is outside the fixed catalog.
func ClassificationByID(id int) *Classification {
	for i := range Classifications {
		if Classifications[i].ID == id {
			return &Classifications[i]
		}
	}
	return nil
}
