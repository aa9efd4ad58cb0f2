package types

// APIVersion identifies the node build and the API revision it speaks.
type APIVersion struct {
	Version    string
	APIVersion uint32 `json:"APIVersion"`
	BlockDelay uint64
}

// AddrInfo is a libp2p peer: its ID and listen multiaddresses.
type AddrInfo struct {
	ID    string `json:"ID"`
	Addrs []string
}

// NatStatus reports the node's NAT reachability as probed by AutoNAT.
type NatStatus struct {
	Reachability int
	PublicAddrs  []string `json:"PublicAddrs,omitempty"`
}

// NetInfo is the Forest-specific swarm connection summary. Unlike most API
// types it uses snake_case keys on the wire.
type NetInfo struct {
	NumPeers           uint64 `json:"num_peers"`
	NumConnections     uint32 `json:"num_connections"`
	NumPending         uint32 `json:"num_pending"`
	NumPendingIncoming uint32 `json:"num_pending_incoming"`
	NumPendingOutgoing uint32 `json:"num_pending_outgoing"`
	NumEstablished     uint32 `json:"num_established"`
}

// NodeSyncStatus is the sync portion of a node status report.
type NodeSyncStatus struct {
	Epoch  uint64 `json:"epoch"`
	Behind uint64 `json:"behind"`
}

// NodePeerStatus counts peers usable for message and block propagation.
type NodePeerStatus struct {
	PeersToPublishMsgs   uint32 `json:"peers_to_publish_msgs"`
	PeersToPublishBlocks uint32 `json:"peers_to_publish_blocks"`
}

// NodeChainStatus summarizes recent chain quality.
type NodeChainStatus struct {
	BlocksPerTipsetLast100      float64 `json:"blocks_per_tipset_last_100"`
	BlocksPerTipsetLastFinality float64 `json:"blocks_per_tipset_last_finality"`
}

// NodeStatus aggregates the health of a node. Snake_case keys, matching
// the Forest server.
type NodeStatus struct {
	SyncStatus  NodeSyncStatus  `json:"sync_status"`
	PeerStatus  NodePeerStatus  `json:"peer_status"`
	ChainStatus NodeChainStatus `json:"chain_status"`
}

// SyncState describes one active sync in progress.
type SyncState struct {
	Base    *TipSet `json:"Base"`
	Target  *TipSet `json:"Target"`
	Stage   string
	Epoch   int64
	Start   string `json:"Start,omitempty"`
	End     string `json:"End,omitempty"`
	Message string `json:"Message,omitempty"`
}

// RPCSyncState is the Filecoin.SyncState result: all active syncs.
type RPCSyncState struct {
	ActiveSyncs []SyncState
}
