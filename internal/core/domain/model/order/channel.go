package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Channel identifies the front-of-house workflow an order originated from.
// Channel-specific rules hang off this value: QuickService submissions force
// pending items into preparation, WebWidget submissions are always delivery
// orders, and only counter channels mint queue tokens.
type Channel int

const (
	// ChannelUnknown represents an invalid or undefined channel.
	// This value (0) helps catch uninitialized Channel values.
	ChannelUnknown Channel = iota

	// ChannelFloorManager is the floor-manager terminal used for dine-in service.
	ChannelFloorManager

	// ChannelQuickService is the quick-service counter. Orders from this
	// channel go straight to preparation.
	ChannelQuickService

	// ChannelCaptain is the captain handheld used table-side.
	ChannelCaptain

	// ChannelWebWidget is the public delivery widget. Orders from this channel
	// are always delivery orders with a mandatory customer.
	ChannelWebWidget
)

func getChannelStrings() map[Channel]string {
	return map[Channel]string{
		ChannelUnknown:      "Unknown",
		ChannelFloorManager: "FloorManager",
		ChannelQuickService: "QuickService",
		ChannelCaptain:      "Captain",
		ChannelWebWidget:    "WebWidget",
	}
}

func getValidChannelStrings() map[Channel]string {
	//nolint:exhaustive // ChannelUnknown is intentionally excluded as it's invalid
	return map[Channel]string{
		ChannelFloorManager: "FloorManager",
		ChannelQuickService: "QuickService",
		ChannelCaptain:      "Captain",
		ChannelWebWidget:    "WebWidget",
	}
}

// ChannelFromString parses a channel name as received from the presentation layer.
// Returns a validation error for unknown names.
func ChannelFromString(s string) (Channel, error) {
	for channel, name := range getValidChannelStrings() {
		if name == s {
			return channel, nil
		}
	}
	return ChannelUnknown, errs.NewValueIsInvalidErrorWithCause(
		"channel",
		fmt.Errorf("%q is not a valid channel", s),
	)
}

// Validate checks if the Channel value is valid.
// Valid channels are: FloorManager, QuickService, Captain, WebWidget.
func (c Channel) Validate() error {
	if _, ok := getValidChannelStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"channel",
			fmt.Errorf("%d is not a valid channel", c),
		)
	}
	return nil
}

// String returns the human-readable name of the channel.
// It implements the fmt.Stringer interface and is safe to call on any value.
func (c Channel) String() string {
	if str, ok := getChannelStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
