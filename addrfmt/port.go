package addrfmt

// PortType identifies the transport a port number belongs to.
type PortType int

const (
	PortNone PortType = iota
	PortSCTP
	PortTCP
	PortUDP
	PortDCCP
	PortIPX
	PortDDP
	PortIDP
	PortUSB
	PortI2C
	PortIBQP
	PortBluetooth
)

// String returns the canonical uppercase protocol name. Values outside
// the known set come back as "[Unknown]" rather than failing.
func (p PortType) String() string {
	switch p {
	case PortNone:
		return "NONE"
	case PortSCTP:
		return "SCTP"
	case PortTCP:
		return "TCP"
	case PortUDP:
		return "UDP"
	case PortDCCP:
		return "DCCP"
	case PortIPX:
		return "IPX"
	case PortDDP:
		return "DDP"
	case PortIDP:
		return "IDP"
	case PortUSB:
		return "USB"
	case PortI2C:
		return "I2C"
	case PortIBQP:
		return "IBQP"
	case PortBluetooth:
		return "BLUETOOTH"
	}
	return "[Unknown]"
}
