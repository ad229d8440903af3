package model

// Snapshot is one frozen engine input: the drained application records plus
// whichever precomputed aggregates the source could serve. A nil aggregate
// means the source had none, not that the value is zero.
type Snapshot struct {
	Applications []ApplicationRecord `json:"applications"`
	Overview     *Overview           `json:"overview,omitempty"`
	Statistics   *Statistics         `json:"statistics,omitempty"`
}
