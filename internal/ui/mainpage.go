package ui

import (
	"fmt"
	"strings"

	"github.com/duet-tui/duet/internal/format"
	"github.com/duet-tui/duet/internal/sanitize"
)

// renderMainPage draws the pairing overview: partner card, relationship
// stats and the shared cloud link. Before initialization completes only a
// connecting notice is shown; without a pairing the page is a single
// placeholder and every pair-scoped section is omitted entirely.
func (m Model) renderMainPage() string {
	styles := m.theme.Styles()

	if !m.snapshot.Initialized {
		return styles.MutedText.Render("Connecting...")
	}

	if !m.snapshot.HasPair {
		body := styles.Heart.Render("No pair yet") + "\n\n" +
			styles.Text.Render("Ask your partner to send you an invite,") + "\n" +
			styles.Text.Render("or create one from the bot chat.")
		return styles.Card.Render(body)
	}

	var sections []string
	sections = append(sections, m.renderPartnerCard())
	sections = append(sections, m.renderStats())
	sections = append(sections, m.renderCloud())
	return strings.Join(sections, "\n\n")
}

func (m Model) renderPartnerCard() string {
	styles := m.theme.Styles()
	p := m.snapshot.Partner

	if p == nil {
		return styles.Card.Render(styles.MutedText.Render("Partner details unavailable"))
	}

	name := sanitize.Text(p.FirstName)
	if name == "" {
		name = sanitize.Text(p.Username)
	}
	if name == "" {
		name = "Your partner"
	}

	var b strings.Builder
	b.WriteString(styles.Heart.Render("♥ "))
	b.WriteString(styles.Text.Render(name))
	if u := sanitize.Text(p.Username); u != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("t.me/" + u))
	}
	return styles.Card.Render(b.String())
}

// renderStats formats the server-computed relationship stats. Countdown
// lines appear only when the stats block exists and the start date is not
// in the future; milestone lines additionally require a non-zero target.
func (m Model) renderStats() string {
	styles := m.theme.Styles()
	pair := m.snapshot.Pair

	if pair == nil || strings.TrimSpace(pair.StartDate) == "" {
		return styles.Card.Render(
			styles.MutedText.Render("Start date not set") + "\n" +
				styles.FaintText.Render("press s to set it"))
	}

	st := pair.StartStats
	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Together since "))
	if st != nil && st.StartDateHuman != "" {
		b.WriteString(styles.Text.Render(st.StartDateHuman))
	} else {
		b.WriteString(styles.Text.Render(format.Date(pair.StartDate)))
	}

	if st == nil {
		return styles.Card.Render(b.String())
	}

	if st.Future {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("The big day is still ahead"))
		return styles.Card.Render(b.String())
	}

	b.WriteString("\n\n")
	b.WriteString(styles.Heart.Render(format.Days(st.DaysTogether)))
	b.WriteString(styles.Text.Render(" together"))
	if st.Years > 0 || st.Months > 0 {
		b.WriteString(styles.MutedText.Render("  (" + format.YearsMonths(st.Years, st.Months) + ")"))
	}

	if st.DaysUntilNext > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(fmt.Sprintf("Next anniversary in %s", format.Days(st.DaysUntilNext))))
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("  %d%% of the year behind you", st.PercentToNext)))
	}

	if st.NextMilestoneDays > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(fmt.Sprintf("%s mark in %s",
			format.Days(st.NextMilestoneDays), format.Days(st.NextMilestoneDaysLeft))))
		if st.NextMilestoneDate != "" {
			b.WriteString(styles.FaintText.Render("  " + format.Date(st.NextMilestoneDate)))
		}
	}

	if st.NextBigYear > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(fmt.Sprintf("%s anniversary in %s",
			format.Years(st.NextBigYear), format.Days(st.NextBigYearDaysLeft))))
		if st.NextBigYearDate != "" {
			b.WriteString(styles.FaintText.Render("  " + format.Date(st.NextBigYearDate)))
		}
	}

	return styles.Card.Render(b.String())
}

func (m Model) renderCloud() string {
	styles := m.theme.Styles()

	link := ""
	if m.snapshot.Pair != nil {
		link = strings.TrimSpace(m.snapshot.Pair.CloudURL)
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Shared cloud"))
	b.WriteString("\n")
	if link == "" {
		b.WriteString(styles.MutedText.Render("Nothing yet"))
		b.WriteString(styles.FaintText.Render("  press c to add a link"))
	} else {
		b.WriteString(styles.Text.Render(sanitize.URL(link)))
		b.WriteString(styles.FaintText.Render("  o open  y copy  c change"))
	}
	return styles.Card.Render(b.String())
}
