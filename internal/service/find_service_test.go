package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafb-tech/alacarte/internal/contract"
	"github.com/cafb-tech/alacarte/internal/domain"
	"github.com/cafb-tech/alacarte/internal/geo"
	"github.com/cafb-tech/alacarte/internal/llm"
	"github.com/cafb-tech/alacarte/internal/repository"
	"github.com/cafb-tech/alacarte/internal/schedule"
	"github.com/cafb-tech/alacarte/internal/testutil"
)

type stubGeocoder struct {
	loc geo.Location
	err error
}

func (g stubGeocoder) Geocode(ctx context.Context, address string) (geo.Location, error) {
	return g.loc, g.err
}

type cannedResponder struct {
	text string
	err  error
}

func (r cannedResponder) Enabled() bool { return true }

func (r cannedResponder) Respond(context.Context, string, string) (string, error) {
	return r.text, r.err
}

// findFixture seeds two agencies near DC: one open Wednesdays within a
// mile, one open Thursdays three miles out.
func findFixture(t *testing.T) (repository.AgencyRepo, repository.HoursRepo, *geo.MemoryLocator) {
	t.Helper()
	database := testutil.NewTestDB(t)
	agencies := repository.NewSQLiteAgencyRepo(database)
	hours := repository.NewSQLiteHoursRepo(database)
	locator := geo.NewMemoryLocator()
	ctx := context.Background()

	near := testutil.NewTestAgency("Hope Market", testutil.WithCoordinates(38.91, -77.03))
	near.ID = "near"
	require.NoError(t, agencies.Upsert(ctx, near))
	require.NoError(t, hours.ReplaceForAgency(ctx, "near", []schedule.RawHoursRow{
		{AgencyID: "near", WeekdayLabel: "Wednesday", FrequencyText: "Every week",
			StartTimeText: "9:00 AM", EndTimeText: "1:00 PM"},
	}))
	locator.Add("near", geo.Location{Latitude: 38.91, Longitude: -77.03})

	far := testutil.NewTestAgency("Corner Pantry", testutil.WithCoordinates(38.95, -77.02))
	far.ID = "far"
	require.NoError(t, agencies.Upsert(ctx, far))
	require.NoError(t, hours.ReplaceForAgency(ctx, "far", []schedule.RawHoursRow{
		{AgencyID: "far", WeekdayLabel: "Thursday", FrequencyText: "Every week",
			StartTimeText: "10:00 AM", EndTimeText: "2:00 PM"},
	}))
	locator.Add("far", geo.Location{Latitude: 38.95, Longitude: -77.02})

	return agencies, hours, locator
}

func TestFind_EndToEnd(t *testing.T) {
	agencies, hours, locator := findFixture(t)
	svc := NewFindService(
		stubGeocoder{loc: geo.Location{Latitude: 38.9072, Longitude: -77.0369}},
		locator, agencies, hours,
		NewMatchService(MatchConfig{}, testLogger()),
		llm.DisabledResponder{},
		testLogger(),
	)

	req := contract.NewFindRequest("Washington, DC", wednesday, domain.PeriodMorning)
	resp, err := svc.Find(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.TraceID)
	require.Len(t, resp.Matches, 2)

	// Nearest first.
	assert.Equal(t, "near", resp.Matches[0].Agency.ID)
	assert.True(t, resp.Matches[0].Result.IsOpen())
	require.NotNil(t, resp.Matches[0].Result.EffectiveWindow)
	assert.Equal(t, "09:00", resp.Matches[0].Result.EffectiveWindow.Start.String())

	assert.Equal(t, "far", resp.Matches[1].Agency.ID)
	assert.Equal(t, domain.StateClosedWithNext, resp.Matches[1].Result.State)

	// Deterministic fallback text since generation is disabled.
	assert.Contains(t, resp.Recommendation, "Hope Market")
}

func TestFind_UsesResponderWhenEnabled(t *testing.T) {
	agencies, hours, locator := findFixture(t)
	svc := NewFindService(
		stubGeocoder{loc: geo.Location{Latitude: 38.9072, Longitude: -77.0369}},
		locator, agencies, hours,
		NewMatchService(MatchConfig{}, testLogger()),
		cannedResponder{text: "Try Hope Market first."},
		testLogger(),
	)

	resp, err := svc.Find(context.Background(),
		contract.NewFindRequest("Washington, DC", wednesday, domain.PeriodMorning))
	require.NoError(t, err)
	assert.Equal(t, "Try Hope Market first.", resp.Recommendation)
}

func TestFind_ResponderFailureFallsBack(t *testing.T) {
	agencies, hours, locator := findFixture(t)
	svc := NewFindService(
		stubGeocoder{loc: geo.Location{Latitude: 38.9072, Longitude: -77.0369}},
		locator, agencies, hours,
		NewMatchService(MatchConfig{}, testLogger()),
		cannedResponder{err: llm.ErrRetryExhausted},
		testLogger(),
	)

	resp, err := svc.Find(context.Background(),
		contract.NewFindRequest("Washington, DC", wednesday, domain.PeriodMorning))
	require.NoError(t, err)
	assert.Contains(t, resp.Recommendation, "Hope Market")
}

func TestFind_GeocodeFailure(t *testing.T) {
	agencies, hours, locator := findFixture(t)
	svc := NewFindService(
		stubGeocoder{err: geo.ErrNoResults},
		locator, agencies, hours,
		NewMatchService(MatchConfig{}, testLogger()),
		llm.DisabledResponder{},
		testLogger(),
	)

	_, err := svc.Find(context.Background(),
		contract.NewFindRequest("nowhere", wednesday, domain.PeriodMorning))
	assert.ErrorIs(t, err, geo.ErrNoResults)
}

func TestFind_RadiusExcludesFarAgencies(t *testing.T) {
	agencies, hours, locator := findFixture(t)
	svc := NewFindService(
		stubGeocoder{loc: geo.Location{Latitude: 38.9072, Longitude: -77.0369}},
		locator, agencies, hours,
		NewMatchService(MatchConfig{}, testLogger()),
		llm.DisabledResponder{},
		testLogger(),
	)

	req := contract.NewFindRequest("Washington, DC", wednesday, domain.PeriodMorning)
	req.RadiusMiles = 1

	resp, err := svc.Find(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "near", resp.Matches[0].Agency.ID)
}
