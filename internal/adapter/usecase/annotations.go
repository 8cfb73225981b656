package usecase

import "github.com/sentivora/mlr-automation/internal/core/domain"

// Annotation styling shared by every explanatory box.
const (
	annoFillHighlight = "#F8FFD1"
	annoFillWhite     = "#FFFFFF"
	annoBorderBlack   = "#000000"
	annoBorderRed     = "#FF0000"
)

func noteBox(x, y, w, h float64, runs ...domain.TextRun) domain.TextBox {
	return domain.TextBox{
		X: x, Y: y, Width: w, Height: h,
		Runs:          runs,
		Background:    annoFillHighlight,
		BorderColor:   annoBorderBlack,
		BorderWidthPt: 0.5,
		FontSizePt:    9,
	}
}

func calloutBox(x, y, w, h float64, runs ...domain.TextRun) domain.TextBox {
	return domain.TextBox{
		X: x, Y: y, Width: w, Height: h,
		Runs:          runs,
		BorderColor:   annoBorderRed,
		BorderWidthPt: 0.75,
		FontSizePt:    10,
		Centered:      true,
	}
}

// addInframe970Annotations attaches the six explanatory boxes shown on the
// first Desktop In-frame 970x250 slide: two state descriptions plus four
// red callouts pointing into the creatives.
func addInframe970Annotations(s *domain.SlidePlan) {
	s.AddText(noteBox(25.16, 3.3, 8.11, 2.82,
		domain.TextRun{Text: "Teaser State/Pre-engagement State", Bold: true},
		domain.TextRun{Text: "\n\nIn this state, the user sees the ad unit for the first time on the publisher's site and can either roll over or click the ad, both of which count as an engagement. The ISI auto scrolls."},
	))
	s.AddText(noteBox(25.16, 12.45, 8.11, 3.21,
		domain.TextRun{Text: "Engaged State", Bold: true},
		domain.TextRun{Text: "\n\nOnce the users click or hover, the full video starts playing with sound. They will then see the complete unit, which includes the logo, text, CTA, and tabs. The ISI will automatically start scrolling from the beginning, but the user can also scroll it manually."},
	))
	s.AddText(calloutBox(0.98, 8.71, 8.2, 1.12,
		domain.TextRun{Text: "Global: ", Bold: true},
		domain.TextRun{Text: "The ISI auto scrolls, but the user also has the option to manually scroll through"},
	))
	s.AddText(calloutBox(16.23, 8.98, 8.48, 1.09,
		domain.TextRun{Text: `"ROLLOVER TO EXPLORE" `, Bold: true},
		domain.TextRun{Text: "and "},
		domain.TextRun{Text: `"VDX.TV" `, Bold: true},
		domain.TextRun{Text: "animate in peel back every 3 sec."},
	))
	s.AddText(calloutBox(25.15, 10.94, 5.81, 1.15,
		domain.TextRun{Text: "Clicking the "},
		domain.TextRun{Text: `"X" `, Bold: true},
		domain.TextRun{Text: "minimizes the teaser to "},
		domain.TextRun{Text: "970x90", Bold: true},
		domain.TextRun{Text: "."},
	))
	s.AddText(calloutBox(10.01, 17.5, 6.67, 1.17,
		domain.TextRun{Text: "Global", Bold: true},
		domain.TextRun{Text: ": The volume icon can be used to mute or unmute the video sound."},
	))
	s.AddText(calloutBox(18.03, 17.5, 6.67, 1.11,
		domain.TextRun{Text: "Global: ", Bold: true},
		domain.TextRun{Text: "The user can switch between tabs using these buttons."},
	))
}

// addOTTAnnotation attaches the OTT explainer shown on the first OTT slide.
func addOTTAnnotation(s *domain.SlidePlan) {
	s.AddText(noteBox(2.87, 14.75, 12.98, 1.91,
		domain.TextRun{Text: "OTT Units:", Bold: true},
		domain.TextRun{Text: "\nOTT ads run on streaming platforms like Hulu, and Roku, viewed on Smart TVs, Fire TV, or Apple TV. These are full-screen, non-interactive, non-skippable video ads shown before or during content, ensuring 100% viewability in a lean-back environment."},
	))
}

// addMobileInstreamAnnotation attaches the instream explainer shown on the
// first Mobile Instream slide.
func addMobileInstreamAnnotation(s *domain.SlidePlan) {
	s.AddText(noteBox(0.8, 4.59, 5.31, 10.53,
		domain.TextRun{Text: "Mobile Instream/Inread units:", Bold: true},
		domain.TextRun{Text: "\n\n• Mobile Instream units run on video playing sites like Dailymotion or Vimeo.\n• Instreams differ from other desktop In-frame/expandable units by not showing a pre-engagement state. They are displayed immediately before the main video begins to play for the user. The main video here refers to the actual video that user wished to play from the website. During this time, the user will get a message like \"Video Play Soon\" or option to \"Skip\" the ad.\n• To engage, user will tap the video. Upon engagement, the ISI will auto-scroll from the beginning and the video will continue playing.\n• If the user does not engage, the video will play in full."},
	))
}

// addMobileInframe300x250Annotations attaches the teaser-sizes note and
// the animation callout shown on the first Mobile In-frame 300x250 slide.
func addMobileInframe300x250Annotations(s *domain.SlidePlan) {
	s.AddText(noteBox(9.85, 12.06, 5.62, 2.18,
		domain.TextRun{Text: "Mobile In-frame Teaser Sizes:", Bold: true},
		domain.TextRun{Text: "\nThe mobile In-frame units include two teaser sizes 300x250 and 300x600 which are similar to Desktop In-frame units 300x250 and 300x600."},
	))
	s.AddText(domain.TextBox{
		X: 1.35, Y: 13.83, Width: 5.55, Height: 1.88,
		Runs:          []domain.TextRun{{Text: `The message "TAP TO EXPLORE" and "VDX.TV" animate one after another in this area every 3 sec.`}},
		Background:    annoFillWhite,
		BorderColor:   annoBorderRed,
		BorderWidthPt: 0.75,
		FontSizePt:    10,
	})
}

// addFullISIAnnotations attaches the two click-destination callouts shown
// on the first Full ISI slide.
func addFullISIAnnotations(s *domain.SlidePlan) {
	box := func(x, y float64, text string) domain.TextBox {
		return domain.TextBox{
			X: x, Y: y, Width: 10.27, Height: 1.8,
			Runs:          []domain.TextRun{{Text: text}},
			Background:    annoFillWhite,
			BorderColor:   annoBorderRed,
			BorderWidthPt: 0.75,
			FontSizePt:    10,
		}
	}
	s.AddText(box(2.41, 15.52, "The Full Prescribing Information clicks to:"))
	s.AddText(box(22.04, 15.53, "The Medication Guide clicks to:"))
}
