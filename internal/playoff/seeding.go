package playoff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reallyasi9/playoff-picture/internal/nfl"
)

// PlayoffTeam is a team that earned one of a conference's seven playoff
// slots. Produced fresh by every ResolveSeeding call.
type PlayoffTeam struct {
	*nfl.Team
	// Seed is the playoff seed, 1 through 7.
	Seed int
	// DivisionWinner marks seeds 1-4.
	DivisionWinner bool
	// WildCard marks seeds 5-7.
	WildCard bool
	// TiebreakReason explains, when a ranking was decided by something beyond
	// plain win percentage, which opponent was beaten and on what criterion.
	TiebreakReason string
}

// ResolveSeeding orders one conference's teams into its seven playoff slots:
// the four division winners seeded 1-4, then the three best remaining teams
// as wildcards seeded 5-7.
//
// Teams that remain indistinguishable after every implemented tiebreaker keep
// their standings order. Strength-of-victory and strength-of-schedule are not
// implemented, so that fallback can differ from the full NFL rulebook.
func ResolveSeeding(conference []*nfl.Team, rec *TiebreakRecords) []PlayoffTeam {
	reasons := make(map[string]string)

	// Division races.
	divOrder := make([]nfl.Division, 0, 4)
	byDivision := make(map[nfl.Division][]*nfl.Team)
	for _, t := range conference {
		if _, ok := byDivision[t.Division]; !ok {
			divOrder = append(divOrder, t.Division)
		}
		byDivision[t.Division] = append(byDivision[t.Division], t)
	}

	winners := make([]*nfl.Team, 0, 4)
	isWinner := make(map[string]bool)
	for _, d := range divOrder {
		ranked := rankTeams(byDivision[d], rec, compareDivisionRivals, reasons)
		winners = append(winners, ranked[0])
		isWinner[ranked[0].Abbr] = true
	}

	// Seeds 1-4.
	winners = rankTeams(winners, rec, compareDivisionWinners, reasons)

	// Wildcard pool: everyone else, best record first, ties resolved per
	// equal-percentage group.
	pool := make([]*nfl.Team, 0, len(conference)-len(winners))
	for _, t := range conference {
		if !isWinner[t.Abbr] {
			pool = append(pool, t)
		}
	}
	// Exact comparison keeps the sort a strict weak ordering; percentages
	// within the tolerance are grouped into ties below.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].WinPct() > pool[j].WinPct()
	})
	pool = resolveWildcardTies(pool, rec, reasons)

	out := make([]PlayoffTeam, 0, 7)
	for i, t := range winners {
		out = append(out, PlayoffTeam{
			Team:           t,
			Seed:           i + 1,
			DivisionWinner: true,
			TiebreakReason: reasons[t.Abbr],
		})
	}
	for i := 0; i < 3 && i < len(pool); i++ {
		out = append(out, PlayoffTeam{
			Team:           pool[i],
			Seed:           len(winners) + i + 1,
			WildCard:       true,
			TiebreakReason: reasons[pool[i].Abbr],
		})
	}
	return out
}

// compareFunc orders two teams. A positive result ranks a ahead of b, and the
// reason (non-empty only when a criterion beyond plain win percentage
// decided) describes the winner's edge over the loser.
type compareFunc func(a, b *nfl.Team, rec *TiebreakRecords) (int, string)

// rankTeams is a stable insertion sort that records tiebreak reasons as it
// resolves them. Teams that compare equal keep their input order.
func rankTeams(teams []*nfl.Team, rec *TiebreakRecords, cmp compareFunc, reasons map[string]string) []*nfl.Team {
	out := make([]*nfl.Team, len(teams))
	copy(out, teams)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			c, reason := cmp(out[j], out[j-1], rec)
			if c <= 0 {
				if c < 0 && reason != "" {
					reasons[out[j-1].Abbr] = reason
				}
				break
			}
			if reason != "" {
				reasons[out[j].Abbr] = reason
			}
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// compareDivisionRivals applies the full division tiebreaker cascade:
// win percentage, head-to-head (only if the pair played), division record,
// common games, conference record, then win percentage as final fallback.
func compareDivisionRivals(a, b *nfl.Team, rec *TiebreakRecords) (int, string) {
	if d := a.WinPct() - b.WinPct(); d > winPctEpsilon {
		return 1, ""
	} else if d < -winPctEpsilon {
		return -1, ""
	}

	if c, reason := compareHeadToHead(a, b, rec); c != 0 {
		return c, reason
	}

	da, db := rec.DivisionRecord(a.Abbr), rec.DivisionRecord(b.Abbr)
	if da.Games() > 0 && db.Games() > 0 {
		if d := da.WinPct() - db.WinPct(); d > winPctEpsilon {
			return 1, fmt.Sprintf("division record over %s (%s to %s)", b.Abbr, da, db)
		} else if d < -winPctEpsilon {
			return -1, fmt.Sprintf("division record over %s (%s to %s)", a.Abbr, db, da)
		}
	}

	ca, cb := rec.CommonGames(a.Abbr, b.Abbr), rec.CommonGames(b.Abbr, a.Abbr)
	if ca.Games() > 0 && cb.Games() > 0 {
		if d := ca.WinPct() - cb.WinPct(); d > winPctEpsilon {
			return 1, fmt.Sprintf("common games over %s (%s to %s)", b.Abbr, ca, cb)
		} else if d < -winPctEpsilon {
			return -1, fmt.Sprintf("common games over %s (%s to %s)", a.Abbr, cb, ca)
		}
	}

	if c, reason := compareConferenceRecords(a, b, rec); c != 0 {
		return c, reason
	}

	// Final fallback is win percentage again, which is already known equal.
	return 0, ""
}

// compareDivisionWinners seeds division winners 1-4: win percentage, then
// conference record.
func compareDivisionWinners(a, b *nfl.Team, rec *TiebreakRecords) (int, string) {
	if d := a.WinPct() - b.WinPct(); d > winPctEpsilon {
		return 1, ""
	} else if d < -winPctEpsilon {
		return -1, ""
	}
	if c, reason := compareConferenceRecords(a, b, rec); c != 0 {
		return c, reason
	}
	return 0, ""
}

func compareHeadToHead(a, b *nfl.Team, rec *TiebreakRecords) (int, string) {
	ha := rec.HeadToHead(a.Abbr, b.Abbr)
	if ha.Games() == 0 {
		return 0, ""
	}
	hb := rec.HeadToHead(b.Abbr, a.Abbr)
	if d := ha.WinPct() - hb.WinPct(); d > winPctEpsilon {
		return 1, fmt.Sprintf("head-to-head vs %s (%s)", b.Abbr, ha)
	} else if d < -winPctEpsilon {
		return -1, fmt.Sprintf("head-to-head vs %s (%s)", a.Abbr, hb)
	}
	return 0, ""
}

func compareConferenceRecords(a, b *nfl.Team, rec *TiebreakRecords) (int, string) {
	fa, fb := rec.ConferenceRecord(a.Abbr), rec.ConferenceRecord(b.Abbr)
	if fa.Games() == 0 || fb.Games() == 0 {
		return 0, ""
	}
	if d := fa.WinPct() - fb.WinPct(); d > winPctEpsilon {
		return 1, fmt.Sprintf("conference record over %s (%s to %s)", b.Abbr, fa, fb)
	} else if d < -winPctEpsilon {
		return -1, fmt.Sprintf("conference record over %s (%s to %s)", a.Abbr, fb, fa)
	}
	return 0, ""
}

// resolveWildcardTies walks the win-percentage-sorted pool, finds each run of
// teams with equal percentage, and resolves the run as a group.
func resolveWildcardTies(pool []*nfl.Team, rec *TiebreakRecords, reasons map[string]string) []*nfl.Team {
	out := make([]*nfl.Team, 0, len(pool))
	for i := 0; i < len(pool); {
		j := i + 1
		for j < len(pool) && pool[j-1].WinPct()-pool[j].WinPct() <= winPctEpsilon {
			j++
		}
		if j-i == 1 {
			out = append(out, pool[i])
		} else {
			out = append(out, resolveWildcardGroup(pool[i:j], rec, reasons)...)
		}
		i = j
	}
	return out
}

// resolveWildcardGroup orders a group of tied wildcard contenders.
//
// Each round, the first team to have beaten every other remaining team
// head-to-head (with any unplayed pairing disqualifying the check) is
// emitted. Failing that, a team with a uniquely best conference record is
// emitted. Failing both, the first remaining team is emitted as a last
// resort: common-games resolution for groups of three or more is a known
// gap, left unimplemented to keep the fallback ordering deterministic.
func resolveWildcardGroup(group []*nfl.Team, rec *TiebreakRecords, reasons map[string]string) []*nfl.Team {
	out := make([]*nfl.Team, 0, len(group))
	rem := make([]*nfl.Team, len(group))
	copy(rem, group)

	for len(rem) > 0 {
		if len(rem) == 1 {
			out = append(out, rem[0])
			break
		}

		if i, beaten := findSweep(rem, rec); i >= 0 {
			reasons[rem[i].Abbr] = fmt.Sprintf("head-to-head sweep of %s", strings.Join(beaten, ", "))
			out = append(out, rem[i])
			rem = append(rem[:i], rem[i+1:]...)
			continue
		}

		if i := findUniqueBestConference(rem, rec); i >= 0 {
			rivals := make([]string, 0, len(rem)-1)
			for j, t := range rem {
				if j != i {
					rivals = append(rivals, t.Abbr)
				}
			}
			reasons[rem[i].Abbr] = fmt.Sprintf("conference record (%s) over %s",
				rec.ConferenceRecord(rem[i].Abbr), strings.Join(rivals, ", "))
			out = append(out, rem[i])
			rem = append(rem[:i], rem[i+1:]...)
			continue
		}

		out = append(out, rem[0])
		rem = rem[1:]
	}

	return out
}

// findSweep returns the index of the first team that beat every other team in
// the group head-to-head, along with the beaten opponents. A pairing with no
// games played disqualifies that team's sweep.
func findSweep(group []*nfl.Team, rec *TiebreakRecords) (int, []string) {
	for i, t := range group {
		beaten := make([]string, 0, len(group)-1)
		swept := true
		for j, o := range group {
			if i == j {
				continue
			}
			hh := rec.HeadToHead(t.Abbr, o.Abbr)
			if hh.Games() == 0 || hh.WinPct() <= 0.5 {
				swept = false
				break
			}
			beaten = append(beaten, o.Abbr)
		}
		if swept {
			return i, beaten
		}
	}
	return -1, nil
}

// findUniqueBestConference returns the index of the team with the strictly
// best conference record, or -1 if the best is shared or no team has
// conference games.
func findUniqueBestConference(group []*nfl.Team, rec *TiebreakRecords) int {
	best := -1
	bestPct := -1.0
	unique := false
	for i, t := range group {
		cr := rec.ConferenceRecord(t.Abbr)
		if cr.Games() == 0 {
			continue
		}
		pct := cr.WinPct()
		switch {
		case pct > bestPct+winPctEpsilon:
			best, bestPct, unique = i, pct, true
		case pct > bestPct-winPctEpsilon:
			unique = false
		}
	}
	if best >= 0 && unique {
		return best
	}
	return -1
}
