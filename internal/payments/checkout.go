package payments

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/cityvent/events-api/internal/models"
)

// Checkout creates Mercado Pago payment preferences for paid events.
type Checkout struct {
	prefs preference.Client
}

func NewCheckout(accessToken string) (*Checkout, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Checkout{prefs: preference.NewClient(cfg)}, nil
}

// CreatePreference returns the init point URL the buyer is redirected
// to. The event's public id travels as the external reference so the
// payment webhook can find it back.
func (c *Checkout) CreatePreference(
	ctx context.Context,
	ev *models.Event,
	quantity int,
) (string, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:        ev.PublicID.String(),
				Title:     ev.Title,
				Quantity:  quantity,
				UnitPrice: ev.TicketPrice,
			},
		},
		ExternalReference: ev.PublicID.String(),
	}

	resource, err := c.prefs.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return resource.InitPoint, nil
}
