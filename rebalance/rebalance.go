// This file declares the Result type, sentinel errors, and the Rebalance
// transform.
package rebalance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Eashwar-S/rpp-scenarios/scenario"
)

// ErrNoRequiredSection indicates the file has no LIST_REQUIRED_EDGES:
// marker, so there is nothing to rebalance.
var ErrNoRequiredSection = errors.New("rebalance: LIST_REQUIRED_EDGES section not found")

// Result is the outcome of one rebalancing pass.
type Result struct {
	// Lines is the reassembled file, one entry per line, no newlines.
	Lines []string

	// RequiredCount and NonRequiredCount are the post-move block sizes.
	RequiredCount    int
	NonRequiredCount int

	// DepotCount is the number of ids on the DEPOT: footer line (0 if none);
	// VehicleCount applies the one-depot-means-two-vehicles rule to it.
	DepotCount   int
	VehicleCount int
}

// sections is the line-level partition of a scenario file.
type sections struct {
	header []string // through and including the required-list marker
	req    []string // consecutive "(u,v) ..." lines of the required block
	nonReq []string // same, for the non-required block
	footer []string // first labeled section after the edge blocks, onward
}

// Rebalance moves edge lines between the required and non-required blocks
// until the required block holds ceil(total/2) of them (or the non-required
// block is exhausted), then reassembles the file and rewrites its count
// headers. Edge lines are opaque text throughout; only the leading "("
// marker and the labeled-section shape of the file are interpreted.
func Rebalance(lines []string) (Result, error) {
	secs, err := split(lines)
	if err != nil {
		return Result{}, err
	}

	total := len(secs.req) + len(secs.nonReq)
	target := (total + 1) / 2 // ceil(total/2)

	if surplus := len(secs.req) - target; surplus > 0 {
		// Tail of the required block moves to the front of the non-required
		// block, keeping the moved lines in their original relative order.
		moved := secs.req[target:]
		secs.req = secs.req[:target]
		secs.nonReq = append(append([]string{}, moved...), secs.nonReq...)
	} else {
		for len(secs.req) < target && len(secs.nonReq) > 0 {
			secs.req = append(secs.req, secs.nonReq[0])
			secs.nonReq = secs.nonReq[1:]
		}
	}

	out := assemble(secs)

	depotCount := 0
	for _, l := range out {
		if t := strings.TrimSpace(l); strings.HasPrefix(t, scenario.KeyDepot) {
			depotCount = len(scenario.ParseDepotIDs(t[len(scenario.KeyDepot):]))
			break
		}
	}
	vehicleCount := scenario.VehicleCountFor(depotCount)

	fixCounts(out, len(secs.req), len(secs.nonReq), vehicleCount)

	return Result{
		Lines:            out,
		RequiredCount:    len(secs.req),
		NonRequiredCount: len(secs.nonReq),
		DepotCount:       depotCount,
		VehicleCount:     vehicleCount,
	}, nil
}

// split partitions the file's lines. Non-edge lines inside the required
// block are treated as stray header content; non-edge lines inside the
// non-required block are dropped, matching the source behavior.
func split(lines []string) (sections, error) {
	var secs sections
	const (
		inHeader = iota
		inRequired
		inNonRequired
		inFooter
	)
	state := inHeader

	for _, line := range lines {
		t := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(t, scenario.MarkRequired):
			state = inRequired
			secs.header = append(secs.header, line)
			continue
		case strings.HasPrefix(t, scenario.MarkNonRequired):
			state = inNonRequired
			continue // marker re-emitted by assemble
		case strings.HasSuffix(t, ":") && (state == inRequired || state == inNonRequired):
			// First labeled section after the edge blocks opens the footer.
			state = inFooter
			secs.footer = append(secs.footer, line)
			continue
		}

		switch state {
		case inHeader:
			secs.header = append(secs.header, line)
		case inRequired:
			if scenario.IsEdgeLine(t) {
				secs.req = append(secs.req, line)
			} else {
				secs.header = append(secs.header, line)
			}
		case inNonRequired:
			if scenario.IsEdgeLine(t) {
				secs.nonReq = append(secs.nonReq, line)
			}
		default:
			secs.footer = append(secs.footer, line)
		}
	}

	if state == inHeader {
		return sections{}, fmt.Errorf("%w (%d lines scanned)", ErrNoRequiredSection, len(lines))
	}

	return secs, nil
}

// assemble rebuilds the file: header through the required marker, the
// required block, the non-required marker and block, then the footer.
func assemble(secs sections) []string {
	out := make([]string, 0, len(secs.header)+len(secs.req)+len(secs.nonReq)+len(secs.footer)+1)
	for _, line := range secs.header {
		out = append(out, line)
		if strings.HasPrefix(strings.TrimSpace(line), scenario.MarkRequired) {
			break
		}
	}
	out = append(out, secs.req...)
	out = append(out, scenario.MarkNonRequired)
	out = append(out, secs.nonReq...)
	out = append(out, secs.footer...)

	return out
}

// fixCounts rewrites the three derived count headers in place.
func fixCounts(lines []string, reqCount, nonReqCount, vehicleCount int) {
	for i, line := range lines {
		t := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(t, scenario.KeyRequiredCount):
			lines[i] = fmt.Sprintf("%s %d", scenario.KeyRequiredCount, reqCount)
		case strings.HasPrefix(t, scenario.KeyNonRequiredCount):
			lines[i] = fmt.Sprintf("%s %d", scenario.KeyNonRequiredCount, nonReqCount)
		case strings.HasPrefix(t, scenario.KeyVehicles+":"):
			lines[i] = fmt.Sprintf("%s: %d", scenario.KeyVehicles, vehicleCount)
		}
	}
}
