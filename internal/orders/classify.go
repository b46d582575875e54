package orders

import (
	"sort"

	"github.com/foodhubapp/foodhub-client/internal/models"
)

// Classify turns a server snapshot into the two display lists. The server
// leaves rejected orders in liveOrders; the client moves them into the past
// list. Both lists come back newest first.
func Classify(live, past []models.Order) (displayLive, displayPast []models.Order) {
	displayLive = make([]models.Order, 0, len(live))
	displayPast = make([]models.Order, 0, len(past)+1)
	displayPast = append(displayPast, past...)

	for _, o := range live {
		if o.Status == models.StatusRejected {
			displayPast = append(displayPast, o)
		} else {
			displayLive = append(displayLive, o)
		}
	}

	sortNewestFirst(displayLive)
	sortNewestFirst(displayPast)
	return displayLive, displayPast
}

func sortNewestFirst(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
