package model

type Network string
type ContractAddress string

var (
	Mainnet  Network = "mainnet"
	Ghostnet Network = "ghostnet"
)

// NetworkRef identifies the contract data set queried for a run.
type NetworkRef struct {
	Network  Network
	Contract ContractAddress
}

// Head is a single per-network record of the head endpoint.
type Head struct {
	Network Network `json:"network"`
	Level   Level   `json:"level"`
}
