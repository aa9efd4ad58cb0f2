package types

import "encoding/json"

// ActorState is an actor's balance, code CID, and resolved state, as
// returned by Filecoin.StateReadState. The state tree content is dynamic,
// so it stays opaque JSON.
type ActorState struct {
	Balance TokenAmount
	Code    Cid
	State   json.RawMessage
}

// MessageGasCost itemizes where the gas paid for a message went.
type MessageGasCost struct {
	Message            *Cid `json:"Message"`
	GasUsed            TokenAmount
	BaseFeeBurn        TokenAmount
	OverEstimationBurn TokenAmount
	MinerPenalty       TokenAmount
	MinerTip           TokenAmount
	Refund             TokenAmount
	TotalCost          TokenAmount
}

// InvocResult is the outcome of executing (or replaying) a message,
// including its gas accounting and execution trace.
type InvocResult struct {
	MsgCid         Cid
	Msg            Message
	MsgRct         *Receipt
	Error          string
	Duration       uint64
	GasCost        MessageGasCost
	ExecutionTrace json.RawMessage `json:"ExecutionTrace,omitempty"`
}

// SectorOnChainInfo describes a committed sector.
type SectorOnChainInfo struct {
	SectorNumber          uint64
	SealProof             int64
	SealedCID             Cid      `json:"SealedCID"`
	DealIDs               []uint64 `json:"DealIDs"`
	Activation            int64
	Expiration            int64
	DealWeight            BigInt
	VerifiedDealWeight    BigInt
	InitialPledge         TokenAmount
	ExpectedDayReward     TokenAmount
	ExpectedStoragePledge TokenAmount
}

// SectorPreCommitInfo is the information a miner commits to when
// pre-committing a sector.
type SectorPreCommitInfo struct {
	SealProof     int64
	SectorNumber  uint64
	SealedCID     Cid      `json:"SealedCID"`
	SealRandEpoch int64
	DealIDs       []uint64 `json:"DealIDs"`
	Expiration    int64
	UnsealedCid   *Cid     `json:"UnsealedCid,omitempty"`
}

// SectorPreCommitOnChainInfo is a pre-commitment recorded on chain.
type SectorPreCommitOnChainInfo struct {
	Info             SectorPreCommitInfo
	PreCommitDeposit TokenAmount
	PreCommitEpoch   int64
}

// MinerInfo is the static configuration of a miner actor.
type MinerInfo struct {
	Owner                      Address
	Worker                     Address
	NewWorker                  Address `json:"NewWorker,omitempty"`
	ControlAddresses           []Address
	WorkerChangeEpoch          int64
	PeerId                     *string `json:"PeerId"`
	Multiaddrs                 [][]byte
	WindowPoStProofType        int64
	SectorSize                 uint64
	WindowPoStPartitionSectors uint64
	ConsensusFaultElapsed      int64
	PendingOwnerAddress        *Address `json:"PendingOwnerAddress,omitempty"`
	Beneficiary                Address
}

// Claim is a miner's share of the network's power.
type Claim struct {
	RawBytePower    BigInt
	QualityAdjPower BigInt
}

// MinerPower reports a miner's power claim against the network total.
type MinerPower struct {
	MinerPower  Claim
	TotalPower  Claim
	HasMinPower bool
}

// MinerSectors counts a miner's sectors by liveness state.
type MinerSectors struct {
	Live   uint64
	Active uint64
	Faulty uint64
}

// MinerPartition groups a deadline partition's sectors by state.
type MinerPartition struct {
	AllSectors        BitField
	FaultySectors     BitField
	RecoveringSectors BitField
	LiveSectors       BitField
	ActiveSectors     BitField
}

// Deadline summarizes one proving deadline.
type Deadline struct {
	PostSubmissions      BitField
	DisputableProofCount uint64
}

// DeadlineInfo locates a miner within its current proving period.
type DeadlineInfo struct {
	CurrentEpoch           int64
	PeriodStart            int64
	Index                  uint64
	Open                   int64
	Close                  int64
	Challenge              int64
	FaultCutoff            int64
	WPoStPeriodDeadlines   uint64
	WPoStProvingPeriod     int64
	WPoStChallengeWindow   int64
	WPoStChallengeLookback int64
	FaultDeclarationCutoff int64
}

// MarketBalance is an address's escrow and locked funds in the storage
// market actor.
type MarketBalance struct {
	Escrow TokenAmount
	Locked TokenAmount
}

// MarketDeal is a storage deal proposal together with its on-chain state.
// Proposal and state shapes vary across actor versions, so both stay opaque.
type MarketDeal struct {
	Proposal json.RawMessage
	State    json.RawMessage
}

// DealCollateralBounds is the allowed provider collateral range for a deal.
type DealCollateralBounds struct {
	Min TokenAmount
	Max TokenAmount
}

// CirculatingSupply breaks down the FIL supply at a tipset.
type CirculatingSupply struct {
	FilVested           TokenAmount
	FilMined            TokenAmount
	FilBurnt            TokenAmount
	FilLocked           TokenAmount
	FilCirculating      TokenAmount
	FilReserveDisbursed TokenAmount
}

// MsigTransaction is a pending multisig transaction.
type MsigTransaction struct {
	ID       int64 `json:"ID"`
	To       Address
	Value    TokenAmount
	Method   uint64
	Params   []byte
	Approved []Address
}
