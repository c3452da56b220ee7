package page

// Content is the static copy of the page. Every field is plain data so it
// can be loaded from TOML or YAML.
type Content struct {
	Names     string           `toml:"names" yaml:"names"`
	Date      string           `toml:"date" yaml:"date"`
	HeroImage string           `toml:"hero_image" yaml:"hero_image"`
	Story     StoryContent     `toml:"story" yaml:"story"`
	Events    EventsContent    `toml:"events" yaml:"events"`
	DressCode DressCodeContent `toml:"dress_code" yaml:"dress_code"`
	Gallery   GalleryContent   `toml:"gallery" yaml:"gallery"`
	Footer    FooterContent    `toml:"footer" yaml:"footer"`
}

type StoryContent struct {
	Heading    string   `toml:"heading" yaml:"heading"`
	Photo      string   `toml:"photo" yaml:"photo"`
	Paragraphs []string `toml:"paragraphs" yaml:"paragraphs"`
}

type EventsContent struct {
	Heading string  `toml:"heading" yaml:"heading"`
	List    []Event `toml:"list" yaml:"list"`
}

// Event is one card in the event details section.
type Event struct {
	Title   string `toml:"title" yaml:"title"`
	Date    string `toml:"date" yaml:"date"`
	Time    string `toml:"time" yaml:"time"`
	Venue   string `toml:"venue" yaml:"venue"`
	Address string `toml:"address" yaml:"address"`
	MapLink string `toml:"map_link" yaml:"map_link"`
}

type DressCodeContent struct {
	Heading string `toml:"heading" yaml:"heading"`
	Message string `toml:"message" yaml:"message"`
	Subtext string `toml:"subtext" yaml:"subtext"`
}

type GalleryContent struct {
	Heading string   `toml:"heading" yaml:"heading"`
	Images  []string `toml:"images" yaml:"images"`
}

type FooterContent struct {
	Heading   string `toml:"heading" yaml:"heading"`
	Tagline   string `toml:"tagline" yaml:"tagline"`
	Copyright string `toml:"copyright" yaml:"copyright"`
}

// DefaultContent returns the wedding page's copy.
func DefaultContent() Content {
	return Content{
		Names:     "Ashiq & Aswathi",
		Date:      "November 16, 2025",
		HeroImage: "hero.jpg",
		Story: StoryContent{
			Heading: "Our Story",
			Photo:   "ourstory1.jpg",
			Paragraphs: []string{
				"We began our journey in college, where two hearts from different worlds found each other. " +
					"What started as friendship soon blossomed into a love that faced every challenge—different " +
					"religions, family worries, and society’s doubts. Yet, through it all, our bond only grew stronger.",
				"Distance tested us for 2.5 long years, with miles and time zones between us, but love always " +
					"found its way back. Every call, every memory, and every promise kept us connected.",
				"Now, after all the waiting and growing together, we’re ready to begin the most beautiful " +
					"chapter of our lives—as husband and wife. We can’t wait to celebrate this special day " +
					"with all those who believed in us and our love.",
			},
		},
		Events: EventsContent{
			Heading: "Event Details",
			List: []Event{{
				Title:   "Wedding Ceremony",
				Date:    "November 16, 2025",
				Time:    "4:30 PM - 9:30 PM",
				Venue:   "Renai Kappad Beach Resort",
				Address: "Chemancherry, PO, Thoovappara, Kappad, Kerala",
				MapLink: "https://maps.app.goo.gl/KbEvGeNEdPxDShRm8",
			}},
		},
		DressCode: DressCodeContent{
			Heading: "Dress Code",
			Message: "We invite our guests to dress in Black attire for the celebration.",
			Subtext: "Still, your presence means the most.",
		},
		Gallery: GalleryContent{
			Heading: "Gallery",
			Images: []string{
				"galary1.jpg",
				"galery2.jpg",
				"galery3.jpg",
				"galery4.jpg",
				"galery5.jpg",
				"galery7.jpg",
			},
		},
		Footer: FooterContent{
			Heading:   "Ashiq & Aswathi",
			Tagline:   "Thank you for being part of our journey",
			Copyright: "© 2025 Ashiq & Aswathi. Made with ♥ for our special day.",
		},
	}
}
