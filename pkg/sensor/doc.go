// Package sensor defines the gateway through which the boot sequencer reads
// temperature and power-rail measurements.
//
// The core treats sensor reads as synchronous, bounded-latency calls and
// trusts the gateway's value range only after clamping: out-of-range values
// are pinned to the conservative end of the scale so a wild reading
// classifies as critical/unstable rather than crashing or passing as nominal.
//
// Two gateways are provided: StaticGateway returns fixed readings and backs
// test scenarios and the CLI simulation flags, and FileGateway reads
// hwmon-style sysfs attribute files on real hardware.
package sensor
