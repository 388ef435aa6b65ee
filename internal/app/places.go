package app

// Place is one row of the sheet and one pin on the backdrop.
type Place struct {
	Name   string
	Detail string
}

// DemoPlaces is the content shown when no other content is supplied.
var DemoPlaces = []Place{
	{"Harbour Front Café", "Coffee · 120 m"},
	{"Central Library", "Books · 350 m"},
	{"Riverside Park", "Park · 400 m"},
	{"Old Town Market", "Market · 650 m"},
	{"Museum of Light", "Museum · 800 m"},
	{"North Station", "Transit · 1.1 km"},
	{"Hilltop Lookout", "Viewpoint · 1.4 km"},
	{"Botanical Garden", "Garden · 1.9 km"},
	{"Cinema Odeon", "Cinema · 2.2 km"},
	{"Lakeside Pool", "Swimming · 2.6 km"},
	{"Night Market", "Food · 3.0 km"},
	{"Observatory", "Science · 4.3 km"},
}
