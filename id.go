package nodes

// ID identifies a node, pin or link. IDs are assigned by the host, must be
// stable across frames, and must not be reused for unrelated entities within
// a session. Zero is reserved as the nil sentinel and never identifies a
// real entity.
type ID uint64

// NilID is the reserved zero id.
const NilID ID = 0
