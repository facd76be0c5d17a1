package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/extkit/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected environment.Environment
	}{
		{"", environment.Development},
		{"dev", environment.Development},
		{"Development", environment.Development},
		{"stage", environment.Staging},
		{" staging ", environment.Staging},
		{"prod", environment.Production},
		{"PRODUCTION", environment.Production},
		{"qa", environment.Environment("qa")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, environment.Parse(tt.input))
		})
	}
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  environment.Environment
	}{
		{name: "development", env: environment.Development},
		{name: "production", env: environment.Production},
		{name: "staging", env: environment.Staging},
		{name: "custom", env: environment.Environment("custom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := environment.WithContext(context.Background(), tt.env)
			assert.Equal(t, tt.env, environment.FromContext(ctx))
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, environment.Environment(""), environment.FromContext(context.Background()))
	assert.Equal(t, environment.Environment(""), environment.FromContext(context.TODO()))
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		env         environment.Environment
		production  bool
		staging     bool
		development bool
	}{
		{name: "production", env: environment.Production, production: true},
		{name: "staging", env: environment.Staging, staging: true},
		{name: "development", env: environment.Development, development: true},
		{name: "custom", env: environment.Environment("qa")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := environment.WithContext(context.Background(), tt.env)
			assert.Equal(t, tt.production, environment.IsProduction(ctx))
			assert.Equal(t, tt.staging, environment.IsStaging(ctx))
			assert.Equal(t, tt.development, environment.IsDevelopment(ctx))
		})
	}

	assert.False(t, environment.IsProduction(context.Background()))
}
