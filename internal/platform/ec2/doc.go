// Package ec2 wraps the AWS EC2 API for availability-zone inventory.
//
// The engine only needs one capability from the cloud: an ordered list of
// availability zones for a region. That capability is expressed as the
// ZoneLister interface so tests and the --zones escape hatch can
// substitute a fixed list without touching a real account.
package ec2
