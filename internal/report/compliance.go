package report

import (
	"math"
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

type DocumentState string

const (
	DocumentValid        DocumentState = "valid"
	DocumentExpiringSoon DocumentState = "expiring_soon"
	DocumentExpired      DocumentState = "expired"
	DocumentMissing      DocumentState = "missing"
)

// ExpiryWarningDays is the window before expiry in which a document is
// flagged as expiring soon.
const ExpiryWarningDays = 30

type DocumentCompliance struct {
	State DocumentState `json:"state"`
	// DaysRemaining is negative once the document has expired and 0 when
	// no expiry date is set.
	DaysRemaining int `json:"days_remaining"`
}

// ClassifyDocument maps an optional expiry date and an evaluation instant
// to exactly one document state. Total over its domain; asOf is injected
// so results are reproducible.
func ClassifyDocument(expiry *time.Time, asOf time.Time) DocumentCompliance {
	if expiry == nil {
		return DocumentCompliance{State: DocumentMissing}
	}

	days := int(math.Floor(expiry.Sub(asOf).Hours() / 24))

	switch {
	case days < 0:
		return DocumentCompliance{State: DocumentExpired, DaysRemaining: days}
	case days <= ExpiryWarningDays:
		return DocumentCompliance{State: DocumentExpiringSoon, DaysRemaining: days}
	default:
		return DocumentCompliance{State: DocumentValid, DaysRemaining: days}
	}
}

type ComplianceLevel string

const (
	LevelCompliant    ComplianceLevel = "compliant"
	LevelExpiringSoon ComplianceLevel = "expiring_soon"
	LevelNonCompliant ComplianceLevel = "non_compliant"
	LevelIncomplete   ComplianceLevel = "incomplete"
)

// Qualitative labels derived from ValidPercent. The four-level roll-up is
// canonical; these exist only as display strings for screens that want a
// coarse grade.
const (
	LabelFull    = "Full"
	LabelPartial = "Partial"
	LabelPoor    = "Poor"
)

type TruckCompliance struct {
	NTSA      DocumentCompliance `json:"ntsa"`
	Insurance DocumentCompliance `json:"insurance"`
	TGL       DocumentCompliance `json:"tgl"`
	// Level is the canonical roll-up: expired dominates expiring, which
	// dominates missing, which dominates valid.
	Level ComplianceLevel `json:"level"`
	// ValidPercent = valid documents / 3 * 100.
	ValidPercent float64 `json:"valid_percent"`
	Label        string  `json:"label"`
}

// ClassifyTruck classifies the three compliance documents independently
// and rolls them up. Both granularities come out of this one function so
// call sites cannot diverge on thresholds.
func ClassifyTruck(ntsa, insurance, tgl *time.Time, asOf time.Time) TruckCompliance {
	tc := TruckCompliance{
		NTSA:      ClassifyDocument(ntsa, asOf),
		Insurance: ClassifyDocument(insurance, asOf),
		TGL:       ClassifyDocument(tgl, asOf),
	}

	docs := []DocumentCompliance{tc.NTSA, tc.Insurance, tc.TGL}

	validCount := 0
	hasExpired, hasExpiring, hasMissing := false, false, false
	for _, d := range docs {
		switch d.State {
		case DocumentExpired:
			hasExpired = true
		case DocumentExpiringSoon:
			hasExpiring = true
		case DocumentMissing:
			hasMissing = true
		case DocumentValid:
			validCount++
		}
	}

	switch {
	case hasExpired:
		tc.Level = LevelNonCompliant
	case hasExpiring:
		tc.Level = LevelExpiringSoon
	case hasMissing:
		tc.Level = LevelIncomplete
	default:
		tc.Level = LevelCompliant
	}

	tc.ValidPercent = float64(validCount) / 3 * 100

	switch {
	case validCount == 3:
		tc.Label = LabelFull
	case tc.ValidPercent >= 66:
		tc.Label = LabelPartial
	default:
		tc.Label = LabelPoor
	}

	return tc
}

type ComplianceSummary struct {
	TotalTrucks         int     `json:"total_trucks"`
	Compliant           int     `json:"compliant"`
	ExpiringSoon        int     `json:"expiring_soon"`
	NonCompliant        int     `json:"non_compliant"`
	Incomplete          int     `json:"incomplete"`
	CompliantPercent    float64 `json:"compliant_percent"`
	ExpiringSoonPercent float64 `json:"expiring_soon_percent"`
	NonCompliantPercent float64 `json:"non_compliant_percent"`
	IncompletePercent   float64 `json:"incomplete_percent"`
}

// FleetComplianceSummary classifies every truck and tallies the levels.
// Percentages are 0 for an empty fleet.
func FleetComplianceSummary(trucks []model.Truck, asOf time.Time) ComplianceSummary {
	s := ComplianceSummary{TotalTrucks: len(trucks)}

	for _, t := range trucks {
		switch ClassifyTruck(t.NTSAExpiry, t.InsuranceExpiry, t.TGLExpiry, asOf).Level {
		case LevelCompliant:
			s.Compliant++
		case LevelExpiringSoon:
			s.ExpiringSoon++
		case LevelNonCompliant:
			s.NonCompliant++
		case LevelIncomplete:
			s.Incomplete++
		}
	}

	total := float64(s.TotalTrucks)
	s.CompliantPercent = safeDiv(float64(s.Compliant), total) * 100
	s.ExpiringSoonPercent = safeDiv(float64(s.ExpiringSoon), total) * 100
	s.NonCompliantPercent = safeDiv(float64(s.NonCompliant), total) * 100
	s.IncompletePercent = safeDiv(float64(s.Incomplete), total) * 100

	return s
}

type TruckComplianceRow struct {
	TruckID     uuid.UUID `json:"truck_id"`
	TruckNumber string    `json:"truck_number"`
	TruckCompliance
}

type ComplianceReport struct {
	GeneratedAt       time.Time            `json:"generated_at"`
	Summary           ComplianceSummary    `json:"summary"`
	DocumentsValid    int                  `json:"documents_valid"`
	DocumentsExpiring int                  `json:"documents_expiring"`
	DocumentsExpired  int                  `json:"documents_expired"`
	DocumentsMissing  int                  `json:"documents_missing"`
	Trucks            []TruckComplianceRow `json:"trucks"`
}

// ComplianceOverview produces the fleet-wide compliance report: per-truck
// rows plus document tallies across the whole fleet.
func ComplianceOverview(trucks []model.Truck, asOf time.Time) ComplianceReport {
	r := ComplianceReport{
		GeneratedAt: asOf,
		Summary:     FleetComplianceSummary(trucks, asOf),
		Trucks:      make([]TruckComplianceRow, 0, len(trucks)),
	}

	for _, t := range trucks {
		tc := ClassifyTruck(t.NTSAExpiry, t.InsuranceExpiry, t.TGLExpiry, asOf)
		for _, d := range []DocumentCompliance{tc.NTSA, tc.Insurance, tc.TGL} {
			switch d.State {
			case DocumentValid:
				r.DocumentsValid++
			case DocumentExpiringSoon:
				r.DocumentsExpiring++
			case DocumentExpired:
				r.DocumentsExpired++
			case DocumentMissing:
				r.DocumentsMissing++
			}
		}
		r.Trucks = append(r.Trucks, TruckComplianceRow{
			TruckID:         t.ID,
			TruckNumber:     t.TruckNumber,
			TruckCompliance: tc,
		})
	}

	return r
}
