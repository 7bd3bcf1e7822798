package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestIsRelevant(t *testing.T) {
	assert.True(t, isRelevant("correlation_id"))
	assert.True(t, isRelevant("sheet"))
	assert.True(t, isRelevant("dashboard_total_revenue"))
	assert.False(t, isRelevant("user_agent"))
}

func TestWithFields_DevelopmentFiltersFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()

	base := L.(*logger)
	filtered := L.WithFields(Fields{"user_agent": "curl"})
	assert.Same(t, base, filtered)

	kept := L.WithFields(Fields{"sheet": "PEDIDOS", "user_agent": "curl"}).(*logger)
	assert.Equal(t, "PEDIDOS", kept.entry.Data["sheet"])
	assert.NotContains(t, kept.entry.Data, "user_agent")
}
