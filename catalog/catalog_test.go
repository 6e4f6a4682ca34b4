package catalog_test

import (
	"testing"

	"clearance/catalog"
	"clearance/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strs[T ~string](values ...T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}

	return out
}

func TestGet_CoversEveryEnum(t *testing.T) {
	c := catalog.Get()
	require.NotNil(t, c)

	steps := []string{}
	for _, step := range model.ProgressSteps(model.BookingStatusDraft) {
		steps = append(steps, string(step.Status))
	}

	tests := []struct {
		name    string
		options catalog.Options
		want    []string
	}{
		{name: "booking statuses", options: c.BookingStatuses, want: strs(model.BookingStatuses...)},
		{name: "progress steps", options: c.ProgressSteps, want: steps},
		{name: "job statuses", options: c.JobStatuses, want: strs(model.JobStatuses...)},
		{name: "requirements", options: c.Requirements, want: strs(model.Requirements...)},
		{
			name:    "job types",
			options: c.JobTypes,
			want:    strs(model.JobTypeTransshipment, model.JobTypeDirect, model.JobTypeWarehousing),
		},
		{
			name:    "transshipment methods",
			options: c.TransshipmentMethods,
			want: strs(model.TransshipmentForklift, model.TransshipmentManual, model.TransshipmentCrane,
				model.TransshipmentConveyor, model.TransshipmentNone),
		},
		{name: "cargo modes", options: c.CargoModes, want: strs(model.CargoModeBulk, model.CargoModeConsolidated)},
		{name: "fleets", options: c.Fleets, want: strs(model.FleetOrigin, model.FleetDestination)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.options.Values())

			for _, opt := range tt.options {
				assert.NotEmpty(t, opt.Label, opt.Value)
			}
		})
	}
}

func TestOptions_Label(t *testing.T) {
	c := catalog.Get()

	assert.Equal(t, "Xe Trung Quốc", c.Fleets.Label(string(model.FleetOrigin)))
	assert.Equal(t, "Hàng ghép", c.CargoModes.Label(string(model.CargoModeConsolidated)))
	assert.Equal(t, "mystery", c.JobTypes.Label("mystery"))
}

func TestParse(t *testing.T) {
	c, err := catalog.Parse([]byte("fleets:\n  - { value: origin, label: Origin }\n"))
	require.NoError(t, err)
	assert.Equal(t, catalog.Options{{Value: "origin", Label: "Origin"}}, c.Fleets)
	assert.Empty(t, c.Requirements)

	_, err = catalog.Parse([]byte("fleets: [unclosed"))
	assert.Error(t, err)
}
