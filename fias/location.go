package fias

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"github.com/addrkit/go-fias/httpclient"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type locationQuery struct {
	IP string `validate:"required,ip"`
}

// LocationByIP resolves an IP address to the address objects covering its
// location. The response envelope is {"addresses": [...]}.
func (c *Client) LocationByIP(ctx context.Context, ip string, addressType ...AddressType) (json.RawMessage, error) {
	if err := validate.Struct(locationQuery{IP: ip}); err != nil {
		return nil, httpclient.NewValidationError("ip must be a valid IPv4 or IPv6 address", "ip")
	}
	return c.get(ctx, endpointLocationByIP, map[string]string{
		"ip":           ip,
		"address_type": c.addressTypeParam(addressType),
	})
}
