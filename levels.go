package fse

// config is the wire and table configuration derived from a level. It is the
// entire configuration surface; there is no environment or persisted state.
type config struct {
	tableLog  uint32
	blockSize int  // 0 => single block covering the whole input
	lsb       bool // lsb-first wire ordering (msb-first otherwise)
	wide      bool // 64-bit chunked lsb writer
	buffered  bool // buffered lsb reader on the decode side
}

// configFromLevel maps the public level integer onto table, block, and wire
// choices. The compression ratio depends only on tableLog and blockSize; the
// remaining fields trade speed. Levels above 5 are tuning knobs rather than
// distinct wire contracts.
func configFromLevel(level int) config {
	switch {
	case level <= 1:
		// Single-block msb baseline, interoperable with reference FSE bit order.
		return config{tableLog: defaultTableLog}
	case level == 2:
		return config{tableLog: defaultTableLog, lsb: true}
	case level == 3:
		return config{tableLog: defaultTableLog, lsb: true, wide: true}
	case level == 4:
		return config{tableLog: defaultTableLog, blockSize: 32 << 10, lsb: true, wide: true}
	case level == 5:
		return config{tableLog: defaultTableLog, lsb: true, wide: true, buffered: true}
	case level == 6:
		return config{tableLog: 11, blockSize: 32 << 10, lsb: true}
	default: // 7 and up
		return config{tableLog: defaultTableLog, blockSize: 64 << 10, lsb: true}
	}
}
