package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fleet-service/internal/model"
)

var asOf = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time {
	return &t
}

func daysFromNow(days int) *time.Time {
	return datePtr(asOf.AddDate(0, 0, days))
}

func TestClassifyDocument(t *testing.T) {
	tests := []struct {
		name          string
		expiry        *time.Time
		wantState     DocumentState
		wantRemaining int
	}{
		{
			name:          "expires in 31 days is valid",
			expiry:        daysFromNow(31),
			wantState:     DocumentValid,
			wantRemaining: 31,
		},
		{
			name:          "expires in exactly 30 days is expiring soon",
			expiry:        daysFromNow(30),
			wantState:     DocumentExpiringSoon,
			wantRemaining: 30,
		},
		{
			name:          "expires today is expiring soon",
			expiry:        datePtr(asOf),
			wantState:     DocumentExpiringSoon,
			wantRemaining: 0,
		},
		{
			name:          "expired yesterday",
			expiry:        daysFromNow(-1),
			wantState:     DocumentExpired,
			wantRemaining: -1,
		},
		{
			name:          "long expired",
			expiry:        daysFromNow(-90),
			wantState:     DocumentExpired,
			wantRemaining: -90,
		},
		{
			name:      "no expiry date is missing",
			expiry:    nil,
			wantState: DocumentMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDocument(tt.expiry, asOf)
			assert.Equal(t, tt.wantState, got.State)
			assert.Equal(t, tt.wantRemaining, got.DaysRemaining)
		})
	}
}

func TestClassifyTruckRollUp(t *testing.T) {
	tests := []struct {
		name                 string
		ntsa, insurance, tgl *time.Time
		wantLevel            ComplianceLevel
		wantLabel            string
	}{
		{
			name:      "all valid is compliant",
			ntsa:      daysFromNow(90),
			insurance: daysFromNow(120),
			tgl:       daysFromNow(200),
			wantLevel: LevelCompliant,
			wantLabel: LabelFull,
		},
		{
			name:      "one expired dominates everything",
			ntsa:      daysFromNow(-1),
			insurance: daysFromNow(10),
			tgl:       nil,
			wantLevel: LevelNonCompliant,
			wantLabel: LabelPoor,
		},
		{
			name:      "expiring dominates missing",
			ntsa:      daysFromNow(10),
			insurance: nil,
			tgl:       daysFromNow(90),
			wantLevel: LevelExpiringSoon,
			wantLabel: LabelPoor,
		},
		{
			name:      "missing only is incomplete",
			ntsa:      daysFromNow(90),
			insurance: daysFromNow(120),
			tgl:       nil,
			wantLevel: LevelIncomplete,
			wantLabel: LabelPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTruck(tt.ntsa, tt.insurance, tt.tgl, asOf)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestClassifyTruckValidPercent(t *testing.T) {
	got := ClassifyTruck(daysFromNow(90), daysFromNow(120), nil, asOf)
	assert.InDelta(t, 66.67, got.ValidPercent, 0.01)

	got = ClassifyTruck(nil, nil, nil, asOf)
	assert.Equal(t, 0.0, got.ValidPercent)
	assert.Equal(t, LevelIncomplete, got.Level)
}

func TestFleetComplianceSummary(t *testing.T) {
	trucks := []model.Truck{
		{TruckNumber: "KDA100A", NTSAExpiry: daysFromNow(90), InsuranceExpiry: daysFromNow(90), TGLExpiry: daysFromNow(90)},
		{TruckNumber: "KDA200B", NTSAExpiry: daysFromNow(10), InsuranceExpiry: daysFromNow(90), TGLExpiry: daysFromNow(90)},
		{TruckNumber: "KDA300C", NTSAExpiry: daysFromNow(-5), InsuranceExpiry: daysFromNow(90), TGLExpiry: daysFromNow(90)},
		{TruckNumber: "KDA400D", NTSAExpiry: nil, InsuranceExpiry: daysFromNow(90), TGLExpiry: daysFromNow(90)},
	}

	s := FleetComplianceSummary(trucks, asOf)

	assert.Equal(t, 4, s.TotalTrucks)
	assert.Equal(t, 1, s.Compliant)
	assert.Equal(t, 1, s.ExpiringSoon)
	assert.Equal(t, 1, s.NonCompliant)
	assert.Equal(t, 1, s.Incomplete)
	assert.Equal(t, 25.0, s.CompliantPercent)
	assert.Equal(t, 25.0, s.ExpiringSoonPercent)
}

func TestFleetComplianceSummaryEmptyFleet(t *testing.T) {
	s := FleetComplianceSummary(nil, asOf)

	assert.Equal(t, 0, s.TotalTrucks)
	assert.Equal(t, 0.0, s.CompliantPercent)
	assert.Equal(t, 0.0, s.NonCompliantPercent)
}

func TestComplianceOverviewDocumentTallies(t *testing.T) {
	trucks := []model.Truck{
		{TruckNumber: "KDA100A", NTSAExpiry: daysFromNow(90), InsuranceExpiry: daysFromNow(10), TGLExpiry: nil},
		{TruckNumber: "KDA200B", NTSAExpiry: daysFromNow(-3), InsuranceExpiry: daysFromNow(90), TGLExpiry: daysFromNow(90)},
	}

	r := ComplianceOverview(trucks, asOf)

	assert.Equal(t, asOf, r.GeneratedAt)
	assert.Len(t, r.Trucks, 2)
	assert.Equal(t, 3, r.DocumentsValid)
	assert.Equal(t, 1, r.DocumentsExpiring)
	assert.Equal(t, 1, r.DocumentsExpired)
	assert.Equal(t, 1, r.DocumentsMissing)

	assert.Equal(t, LevelExpiringSoon, r.Trucks[0].Level)
	assert.Equal(t, LevelNonCompliant, r.Trucks[1].Level)
}
