package talentwire

import "strings"

// DataCenter identifies the TalentWire API environment a client talks to.
type DataCenter struct {
	root string
}

// The hosted TalentWire environments.
var (
	DataCenterUS = DataCenter{root: "https://api.us.talentwire.com/v10"}
	DataCenterEU = DataCenter{root: "https://api.eu.talentwire.com/v10"}
	DataCenterAU = DataCenter{root: "https://api.au.talentwire.com/v10"}
)

// SelfHostedDataCenter points the client at a self-hosted deployment root,
// e.g. "https://talentwire.example.com/v10".
func SelfHostedDataCenter(root string) DataCenter {
	return DataCenter{root: strings.TrimRight(root, "/")}
}

// Root returns the endpoint root for this data center.
func (d DataCenter) Root() string { return d.root }
