package fias

// AddressType selects which address representation the service uses.
type AddressType int

const (
	// Administrative is the administrative-territorial division.
	Administrative AddressType = 1
	// Municipality is the municipal division. The service treats it as
	// the default representation.
	Municipality AddressType = 2
)

func (t AddressType) String() string {
	switch t {
	case Administrative:
		return "administrative"
	case Municipality:
		return "municipality"
	default:
		return "unset"
	}
}

// Service URLs
const (
	// DefaultServiceURL is the public FIAS portal, passed to the settings
	// endpoint when requesting a token.
	DefaultServiceURL = "https://fias.nalog.ru/"
	// DefaultSettingsURL issues bearer tokens.
	DefaultSettingsURL = "https://fias.nalog.ru/Home/GetSpasSettings"
	// DefaultBaseURL is the SPAS v2.0 API root.
	DefaultBaseURL = "https://fias-public-service.nalog.ru/api/spas/v2.0"
)

// SPAS v2.0 endpoint paths
const (
	endpointRegions          = "/GetRegions"
	endpointAddressItems     = "/GetAddressItems"
	endpointDetails          = "/GetDetails"
	endpointIsDescendant     = "/IsDescendant"
	endpointHasDescendants   = "/HasDescendants"
	endpointItemByID         = "/GetAddressItemById"
	endpointItemByGUID       = "/GetAddressItemByGuid"
	endpointItemByCadastral  = "/GetAddressItemByCadastralNumber"
	endpointObjectTypes      = "/GetFiasObjectTypes"
	endpointSearchItems      = "/SearchAddressItems"
	endpointAddressHint      = "/GetAddressHint"
	endpointSearchSingleItem = "/SearchAddressItem"
	endpointLocationByIP     = "/GetLocationByIp"
)

// AddressItemsRequest filters the address-item listing. All fields are
// optional; zero values are omitted from the request body.
type AddressItemsRequest struct {
	Path               string      `json:"path,omitempty"`
	AddressLevel       int         `json:"address_level,omitempty"`
	AddressLevels      []int       `json:"address_levels,omitempty"`
	NamePart           string      `json:"name_part,omitempty"`
	AddressType        AddressType `json:"address_type,omitempty"`
	IncludeDescendants bool        `json:"include_descendants,omitempty"`
}

// HintRequest parameterizes the address-hint lookup. When SearchString is
// non-blank the lookup is a GET with query parameters; otherwise it is a
// POST carrying the remaining fields in the body, with searchNonActive
// defaulting to false.
type HintRequest struct {
	SearchString    string
	SearchNonActive bool
	UpToLevel       int
	LocationsBoost  []int64
	AddressType     AddressType
}

// hintBody is the POST form of the hint lookup. The remote contract uses
// camelCase here, unlike the snake_case query parameters elsewhere.
type hintBody struct {
	SearchNonActive bool    `json:"searchNonActive"`
	AddressType     int     `json:"addressType"`
	UpToLevel       int     `json:"upToLevel,omitempty"`
	LocationsBoost  []int64 `json:"locationsBoost,omitempty"`
}
