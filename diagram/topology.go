package diagram

import (
	"errors"
	"fmt"
	"io"
	"net/netip"

	"gopkg.in/yaml.v3"
)

var ErrEmptyTopology = errors.New("topology has no availability zones")

// Topology describes a VPC spread over availability zones, each zone
// holding one public and one private subnet.
type Topology struct {
	Name  string `yaml:"name"`
	CIDR  string `yaml:"cidr"`
	Zones []Zone `yaml:"zones"`
}

// Zone is an availability zone of a topology.
type Zone struct {
	Name          string `yaml:"name"`
	PublicSubnet  string `yaml:"public_subnet"`
	PrivateSubnet string `yaml:"private_subnet"`
}

// DefaultTopology returns the two zone reference VPC.
func DefaultTopology() Topology {
	return Topology{
		Name: "VPC Architecture",
		CIDR: "10.0.0.0/16",
		Zones: []Zone{
			{
				Name:          "Availability Zone 1",
				PublicSubnet:  "10.0.0.0/18",
				PrivateSubnet: "10.0.128.0/18",
			},
			{
				Name:          "Availability Zone 2",
				PublicSubnet:  "10.0.64.0/18",
				PrivateSubnet: "10.0.192.0/18",
			},
		},
	}
}

// LoadTopology decodes a YAML topology from r and validates it.
func LoadTopology(r io.Reader) (Topology, error) {
	var t Topology

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&t); err != nil {
		return Topology{}, fmt.Errorf("failed to decode topology: %w", err)
	}

	if err := t.Validate(); err != nil {
		return Topology{}, err
	}

	return t, nil
}

// Validate checks that all CIDRs parse, that every subnet lies
// within the VPC and that no two subnets overlap.
func (t Topology) Validate() error {
	if len(t.Zones) == 0 {
		return ErrEmptyTopology
	}

	vpc, err := netip.ParsePrefix(t.CIDR)
	if err != nil {
		return fmt.Errorf("invalid vpc cidr %q: %w", t.CIDR, err)
	}

	var subnets []netip.Prefix
	for _, zone := range t.Zones {
		for _, cidr := range []string{zone.PublicSubnet, zone.PrivateSubnet} {
			subnet, err := netip.ParsePrefix(cidr)
			if err != nil {
				return fmt.Errorf("%s: invalid subnet cidr %q: %w", zone.Name, cidr, err)
			}

			if subnet.Bits() < vpc.Bits() || !vpc.Contains(subnet.Addr()) {
				return fmt.Errorf("%s: subnet %s is not within %s", zone.Name, subnet, vpc)
			}

			for _, other := range subnets {
				if subnet.Overlaps(other) {
					return fmt.Errorf("%s: subnet %s overlaps %s", zone.Name, subnet, other)
				}
			}

			subnets = append(subnets, subnet)
		}
	}

	return nil
}
