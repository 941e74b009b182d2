package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"presence-api/model"
	"presence-api/translation"
)

func setup() {
	translation.InitTranslation()
	RegisterValidations()
}

func f(v float64) *float64      { return &v }
func ts(v time.Time) *time.Time { return &v }

func TestLogPresenceRequestValidation(t *testing.T) {
	setup()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	fullFix := &model.LocationFix{
		Longitude:         f(20.0),
		Latitude:          f(10.0),
		Accuracy:          f(5.0),
		LocationTimestamp: ts(now),
	}

	tests := []struct {
		name      string
		request   model.LogPresenceRequest
		wantValid bool
		wantField string
	}{
		{
			"valid without location",
			model.LogPresenceRequest{DeviceTimestamp: ts(now)},
			true,
			"",
		},
		{
			"valid with full location",
			model.LogPresenceRequest{DeviceTimestamp: ts(now), Location: fullFix},
			true,
			"",
		},
		{
			"missing device timestamp",
			model.LogPresenceRequest{},
			false,
			"DeviceTimestamp",
		},
		{
			"location missing accuracy",
			model.LogPresenceRequest{
				DeviceTimestamp: ts(now),
				Location: &model.LocationFix{
					Longitude:         f(20.0),
					Latitude:          f(10.0),
					LocationTimestamp: ts(now),
				},
			},
			false,
			"Accuracy",
		},
		{
			"location missing latitude",
			model.LogPresenceRequest{
				DeviceTimestamp: ts(now),
				Location: &model.LocationFix{
					Longitude:         f(20.0),
					Accuracy:          f(5.0),
					LocationTimestamp: ts(now),
				},
			},
			false,
			"Latitude",
		},
		{
			"location missing longitude",
			model.LogPresenceRequest{
				DeviceTimestamp: ts(now),
				Location: &model.LocationFix{
					Latitude:          f(10.0),
					Accuracy:          f(5.0),
					LocationTimestamp: ts(now),
				},
			},
			false,
			"Longitude",
		},
		{
			"location missing timestamp",
			model.LogPresenceRequest{
				DeviceTimestamp: ts(now),
				Location: &model.LocationFix{
					Longitude: f(20.0),
					Latitude:  f(10.0),
					Accuracy:  f(5.0),
				},
			},
			false,
			"LocationTimestamp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validator.Struct(tt.request)
			if tt.wantValid {
				assert.NoError(t, err)
				return
			}

			if !assert.Error(t, err) {
				return
			}

			errs := model.GetErrors(err)
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
				assert.NotEmpty(t, e.Message)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestSignupPasswordRules(t *testing.T) {
	setup()

	type input struct {
		Password string `validate:"required,gte=6,hasUpper,hasLower,hasNumber"`
	}

	assert.NoError(t, Validator.Struct(input{Password: "Abcdef1"}))
	assert.Error(t, Validator.Struct(input{Password: "abcdef1"}))
	assert.Error(t, Validator.Struct(input{Password: "ABCDEF1"}))
	assert.Error(t, Validator.Struct(input{Password: "Abcdefg"}))
	assert.Error(t, Validator.Struct(input{Password: "Ab1"}))
}
