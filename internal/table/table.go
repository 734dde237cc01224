// Package table holds the fixed shot table and maps its rows onto the
// normalized plot space shared by the linear and logarithmic charts.
package table

import "fmt"

// ShotRecord is one immutable row of the shot table.
type ShotRecord struct {
	Index           int     // Shot index (0 = before the first shot)
	ThreatPercent   float64 // Remaining threat after this shot
	ResourceCount   int     // Crystals left after this shot
	MarginalUtility float64 // Utility gained by this shot; valid only if HasUtility
	HasUtility      bool    // False only for index 0
}

// Utility returns the marginal utility and whether the row defines one.
func (r ShotRecord) Utility() (float64, bool) {
	return r.MarginalUtility, r.HasUtility
}

const (
	// LastIndex is the index of the final shot.
	LastIndex = 5

	// MaxUtility is the top of both charts' value axis.
	MaxUtility = 1000.0

	// MaxThreat is the threat at shot 0.
	MaxThreat = 100.0
)

// records is ordered by Index. Threat and resources never increase,
// utility strictly decreases from index 1 on.
var records = [LastIndex + 1]ShotRecord{
	{Index: 0, ThreatPercent: 100, ResourceCount: 5},
	{Index: 1, ThreatPercent: 85, ResourceCount: 4, MarginalUtility: 1000, HasUtility: true},
	{Index: 2, ThreatPercent: 67, ResourceCount: 3, MarginalUtility: 200, HasUtility: true},
	{Index: 3, ThreatPercent: 50, ResourceCount: 2, MarginalUtility: 45, HasUtility: true},
	{Index: 4, ThreatPercent: 25, ResourceCount: 1, MarginalUtility: 8, HasUtility: true},
	{Index: 5, ThreatPercent: 5, ResourceCount: 0, MarginalUtility: 2, HasUtility: true},
}

// IndexError reports a query outside [0, LastIndex].
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("table: shot index %d out of range [0, %d]", e.Index, LastIndex)
}

// Len returns the number of rows.
func Len() int {
	return len(records)
}

// At returns the row for the given shot index.
func At(index int) (ShotRecord, error) {
	if index < 0 || index > LastIndex {
		return ShotRecord{}, &IndexError{Index: index}
	}
	return records[index], nil
}

// MustAt is like At but panics on an invalid index.
// Used by the game core, where a bad index is a programming error.
func MustAt(index int) ShotRecord {
	r, err := At(index)
	if err != nil {
		panic(err)
	}
	return r
}

// All returns a copy of every row, ordered by index.
func All() []ShotRecord {
	out := make([]ShotRecord, len(records))
	copy(out, records[:])
	return out
}
