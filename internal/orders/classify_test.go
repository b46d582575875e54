package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodhubapp/foodhub-client/internal/models"
)

func orderAt(id string, status models.OrderStatus, created time.Time) models.Order {
	return models.Order{ID: id, Status: status, CreatedAt: created}
}

func TestClassify_RejectedMovesToPast(t *testing.T) {
	t.Parallel()

	live := []models.Order{orderAt("o1", models.StatusRejected, time.Now())}

	displayLive, displayPast := Classify(live, nil)

	assert.Empty(t, displayLive)
	require.Len(t, displayPast, 1)
	assert.Equal(t, "o1", displayPast[0].ID)
}

func TestClassify_SortsNewestFirst(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	live := []models.Order{
		orderAt("old", models.StatusPending, base),
		orderAt("new", models.StatusAccepted, base.Add(time.Hour)),
	}
	past := []models.Order{
		orderAt("p-old", models.StatusDelivered, base.Add(-48*time.Hour)),
		orderAt("p-new", models.StatusDelivered, base.Add(-time.Hour)),
	}

	displayLive, displayPast := Classify(live, past)

	require.Len(t, displayLive, 2)
	assert.Equal(t, "new", displayLive[0].ID)
	require.Len(t, displayPast, 2)
	assert.Equal(t, "p-new", displayPast[0].ID)
}

func TestClassify_RejectedSortedIntoPastByTime(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	live := []models.Order{orderAt("rejected-now", models.StatusRejected, base.Add(time.Hour))}
	past := []models.Order{orderAt("delivered-earlier", models.StatusDelivered, base)}

	_, displayPast := Classify(live, past)

	require.Len(t, displayPast, 2)
	assert.Equal(t, "rejected-now", displayPast[0].ID)
	assert.Equal(t, "delivered-earlier", displayPast[1].ID)
}

func TestClassify_EmptyInput(t *testing.T) {
	t.Parallel()

	displayLive, displayPast := Classify(nil, nil)
	assert.Empty(t, displayLive)
	assert.Empty(t, displayPast)
}
