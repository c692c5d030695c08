package action

import (
	"github.com/Masterminds/vcsimport/host"
	"github.com/Masterminds/vcsimport/importer"
	"github.com/Masterminds/vcsimport/msg"
)

// Hosts lists the hosts of the importer in the order they are tried.
func Hosts(i *importer.Importer) {
	for _, h := range i.Hosts {
		prefix := h.Prefix
		if h.Soft() {
			prefix = "*"
		}
		msg.Puts("%s %s %s %s", h.Name, prefix, selection(h.Command), h.URLFormat)
	}
}

func selection(s host.Selector) string {
	switch v := s.(type) {
	case host.Fixed:
		return string(v)
	case host.Computed:
		return "(per path)"
	default:
		return "(custom)"
	}
}
