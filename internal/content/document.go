package content

// SiteContent is the marketing copy document: hero banner, hero grid cards
// and the about section. It persists as one JSON value under a fixed storage
// key.
type SiteContent struct {
	Hero     Hero       `json:"hero"`
	HeroGrid []HeroCard `json:"heroGrid"`
	About    About      `json:"about"`
}

type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

type HeroCard struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

type About struct {
	Title      string `json:"title"`
	Paragraph1 string `json:"paragraph1"`
	Paragraph2 string `json:"paragraph2"`
	Stats      []Stat `json:"stats"`
	Image      string `json:"image"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DefaultContent returns the structural defaults used whenever the stored
// document is missing or corrupt.
func DefaultContent() SiteContent {
	return SiteContent{
		Hero: Hero{
			Title:    "L'elegance redefinie",
			Subtitle: "Decouvrez notre nouvelle collection de bijoux artisanaux, concus pour sublimer chaque instant.",
		},
		HeroGrid: []HeroCard{
			{
				Title:    "Bijoux uniques",
				Subtitle: "Des pieces d'exception",
				Category: "Bijoux",
			},
			{
				Title:    "Collection mariage",
				Subtitle: "Pour le plus beau jour",
				Category: "Mariage",
			},
		},
		About: About{
			Title:      "L'excellence depuis 1985",
			Paragraph1: "Mkaribu est une maison de joaillerie francaise reconnue pour son savoir-faire et ses creations uniques.",
			Paragraph2: "Notre engagement : offrir des bijoux d'exception, personnalisables selon vos envies, pour celebrer chaque moment precieux de votre vie.",
			Stats: []Stat{
				{Value: "38+", Label: "Annees d'experience"},
				{Value: "50K+", Label: "Clients satisfaits"},
				{Value: "100%", Label: "Atelier local"},
			},
		},
	}
}

// Clone deep-copies the document so callers never alias the store's state.
func (c SiteContent) Clone() SiteContent {
	out := c
	out.HeroGrid = make([]HeroCard, len(c.HeroGrid))
	copy(out.HeroGrid, c.HeroGrid)
	out.About.Stats = make([]Stat, len(c.About.Stats))
	copy(out.About.Stats, c.About.Stats)
	return out
}
