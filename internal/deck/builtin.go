package deck

// Builtin returns the deck shown when no deck file is given.
func Builtin() *Deck {
	return &Deck{
		Name: "android",
		Cards: []Card{
			{Title: "Cupcake", Body: "Android 1.5\nApril 2009"},
			{Title: "Donut", Body: "Android 1.6\nSeptember 2009"},
			{Title: "Eclair", Body: "Android 2.0 – 2.1\nOctober 2009"},
			{Title: "Froyo", Body: "Android 2.2\nMay 2010"},
			{Title: "Gingerbread", Body: "Android 2.3\nDecember 2010"},
			{Title: "Honeycomb", Body: "Android 3.x\nFebruary 2011\ntablets only"},
			{Title: "Ice Cream Sandwich", Body: "Android 4.0\nOctober 2011"},
			{Title: "Jelly Bean", Body: "Android 4.1 – 4.3\nJuly 2012"},
			{Title: "KitKat", Body: "Android 4.4\nOctober 2013"},
			{Title: "Lollipop", Body: "Android 5.x\nNovember 2014\nMaterial Design"},
			{Title: "Marshmallow", Body: "Android 6.0\nOctober 2015"},
			{Title: "Nougat", Body: "Android 7.x\nAugust 2016"},
			{Title: "Oreo", Body: "Android 8.x\nAugust 2017"},
			{Title: "Pie", Body: "Android 9\nAugust 2018"},
		},
	}
}
