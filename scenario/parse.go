package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Eashwar-S/rpp-scenarios/graph"
)

// section tracks which edge list (or trailing block) the line cursor is in.
type section int

const (
	sectionNone section = iota
	sectionRequired
	sectionNonRequired
	sectionFailure
)

// Parse reads a scenario file and returns its graph together with the
// depot list, battery capacity, and derived vehicle count.
//
// Liberal by design: unknown header lines are skipped, blank lines are
// ignored everywhere, and edge annotations without a recognizable weight
// token fall back to DefaultWeight with a logged warning. The mandatory
// VEHICLE CAPACITY header is the one fatal omission (ErrCapacityMissing).
func Parse(r io.Reader) (*graph.Graph, Metadata, error) {
	g := graph.NewGraph(0)
	meta := Metadata{}
	capacitySeen := false
	sec := sectionNone

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, KeyName):
			meta.Name = headerValue(line)
		case strings.HasPrefix(line, KeyVertices):
			n, err := strconv.Atoi(headerValue(line))
			if err != nil {
				return nil, Metadata{}, fmt.Errorf("%w: %q", ErrBadHeaderValue, line)
			}
			for id := 1; id <= n; id++ {
				if err = g.AddVertex(id); err != nil {
					return nil, Metadata{}, err
				}
			}
		case strings.HasPrefix(line, KeyCapacity):
			c, err := strconv.ParseFloat(headerValue(line), 64)
			if err != nil {
				return nil, Metadata{}, fmt.Errorf("%w: %q", ErrBadHeaderValue, line)
			}
			meta.Capacity = c
			capacitySeen = true
		case strings.HasPrefix(line, MarkRequired):
			sec = sectionRequired
		case strings.HasPrefix(line, MarkNonRequired):
			sec = sectionNonRequired
		case strings.HasPrefix(line, MarkFailure):
			sec = sectionFailure
		case strings.HasPrefix(line, KeyDepot):
			meta.Depots = ParseDepotIDs(headerValue(line))
		default:
			switch sec {
			case sectionRequired, sectionNonRequired:
				if err := addEdgeLine(g, line, sec == sectionRequired); err != nil {
					return nil, Metadata{}, err
				}
			case sectionFailure:
				meta.Failure = append(meta.Failure, line)
			default:
				// Count headers and anything else before the edge lists carry
				// derived values; they are recomputed on write, not consumed.
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Metadata{}, err
	}
	if !capacitySeen {
		return nil, Metadata{}, ErrCapacityMissing
	}
	meta.VehicleCount = VehicleCountFor(len(meta.Depots))

	return g, meta, nil
}

// addEdgeLine parses "(u,v) <annotation>" and stores the edge.
func addEdgeLine(g *graph.Graph, line string, required bool) error {
	endpoints, annotation, ok := strings.Cut(line, ") ")
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadEdgeLine, line)
	}
	endpoints = strings.TrimPrefix(strings.TrimSpace(endpoints), "(")

	uStr, vStr, ok := strings.Cut(endpoints, ",")
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadEdgeLine, line)
	}
	u, errU := strconv.Atoi(strings.TrimSpace(uStr))
	v, errV := strconv.Atoi(strings.TrimSpace(vStr))
	if errU != nil || errV != nil {
		return fmt.Errorf("%w: %q", ErrBadEdgeLine, line)
	}

	weight, found := ExtractWeight(annotation)
	if !found {
		log.Warnf("scenario: no edge weight in %q, using default %.1f", line, DefaultWeight)
	}

	return g.AddEdge(u, v, weight, required)
}

// headerValue returns the trimmed text after the first colon of a header
// line, or "" when the line has no colon.
func headerValue(line string) string {
	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}

	return strings.TrimSpace(value)
}
