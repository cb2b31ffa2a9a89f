package shipment

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// TransportMethod classifies how a shipment moves between origin and
// destination. The set mirrors the methods offered on the shipment creation
// form; a shipment may also have no transport method at all.
type TransportMethod string

const (
	TransportMultimodal    TransportMethod = "MULTIMODAL"
	TransportIntermodal    TransportMethod = "INTERMODAL"
	TransportCombined      TransportMethod = "COMBINED"
	TransportThrough       TransportMethod = "THROUGH"
	TransportDoorToDoor    TransportMethod = "DOOR_TO_DOOR"
	TransportDoorToPort    TransportMethod = "DOOR_TO_PORT"
	TransportPortToDoor    TransportMethod = "PORT_TO_DOOR"
	TransportTransshipment TransportMethod = "TRANSSHIPMENT"
	TransportSeaAir        TransportMethod = "SEA_AIR"
	TransportSeaRoad       TransportMethod = "SEA_ROAD"
	TransportRailRoad      TransportMethod = "RAIL_ROAD"
	TransportSeaRail       TransportMethod = "SEA_RAIL"
)

func getTransportMethods() map[TransportMethod]struct{} {
	return map[TransportMethod]struct{}{
		TransportMultimodal:    {},
		TransportIntermodal:    {},
		TransportCombined:      {},
		TransportThrough:       {},
		TransportDoorToDoor:    {},
		TransportDoorToPort:    {},
		TransportPortToDoor:    {},
		TransportTransshipment: {},
		TransportSeaAir:        {},
		TransportSeaRoad:       {},
		TransportRailRoad:      {},
		TransportSeaRail:       {},
	}
}

// TransportMethodFromString parses the wire representation of a transport
// method. Returns an error for unrecognized values; the empty string is not
// a method (omit the field instead).
func TransportMethodFromString(s string) (TransportMethod, error) {
	method := TransportMethod(s)
	if _, ok := getTransportMethods()[method]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"transportMethod",
			fmt.Errorf("%q is not a recognized transport method", s),
		)
	}
	return method, nil
}

// String returns the wire representation, e.g. "DOOR_TO_DOOR".
func (m TransportMethod) String() string {
	return string(m)
}

// IsZero reports whether no transport method is set.
func (m TransportMethod) IsZero() bool {
	return m == ""
}

// Validate accepts the zero value (transport method is optional) and any
// member of the closed set.
func (m TransportMethod) Validate() error {
	if m.IsZero() {
		return nil
	}
	_, err := TransportMethodFromString(string(m))
	return err
}
