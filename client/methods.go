package client

// One typed method per catalog entry. These are mechanical bindings: the
// interesting logic sits in invoke/call, and the per-method facts (name,
// parameter encodings, result kind) come from the catalog table. Keep the
// two files in sync when the remote API grows.

import (
	"context"
	"encoding/json"

	"github.com/ChainSafe/forest-rpc/types"
)

// Auth

// AuthNew creates a new JWT with the requested permissions, returning the
// raw token bytes.
func (c *Client) AuthNew(ctx context.Context, params types.AuthNewParams) ([]byte, error) {
	return call[[]byte](ctx, c, "Filecoin.AuthNew", params)
}

// AuthVerify checks a JWT and returns the permissions it grants.
func (c *Client) AuthVerify(ctx context.Context, headerRaw string) ([]string, error) {
	return call[[]string](ctx, c, "Filecoin.AuthVerify", headerRaw)
}

// Beacon

// BeaconGetEntry returns the drand entry for the given epoch.
func (c *Client) BeaconGetEntry(ctx context.Context, epoch int64) (types.BeaconEntry, error) {
	return call[types.BeaconEntry](ctx, c, "Filecoin.BeaconGetEntry", epoch)
}

// Chain

// ChainGetMessage reads an unsigned message from the chain blockstore.
func (c *Client) ChainGetMessage(ctx context.Context, msgCid types.Cid) (types.Message, error) {
	return call[types.Message](ctx, c, "Filecoin.ChainGetMessage", msgCid)
}

// ChainGetParentMessages returns the messages executed in a block's parent
// tipset, paired with their CIDs.
func (c *Client) ChainGetParentMessages(ctx context.Context, blockCid types.Cid) ([]types.ApiMessage, error) {
	return call[[]types.ApiMessage](ctx, c, "Filecoin.ChainGetParentMessages", blockCid)
}

// ChainGetParentReceipts returns the receipts for a block's parent
// messages, in execution order.
func (c *Client) ChainGetParentReceipts(ctx context.Context, blockCid types.Cid) ([]types.Receipt, error) {
	return call[[]types.Receipt](ctx, c, "Filecoin.ChainGetParentReceipts", blockCid)
}

// ChainGetMessagesInTipset returns every message in the tipset's blocks.
func (c *Client) ChainGetMessagesInTipset(ctx context.Context, tsk types.TipsetKey) ([]types.ApiMessage, error) {
	return call[[]types.ApiMessage](ctx, c, "Filecoin.ChainGetMessagesInTipset", tsk)
}

// ChainExport starts a snapshot export on the node. The result shape
// depends on the export mode, so it is returned as raw JSON.
func (c *Client) ChainExport(ctx context.Context, params types.ChainExportParams) (json.RawMessage, error) {
	return call[json.RawMessage](ctx, c, "Filecoin.ChainExport", params)
}

// ChainReadObj reads raw IPLD block bytes from the blockstore.
func (c *Client) ChainReadObj(ctx context.Context, cid types.Cid) ([]byte, error) {
	return call[[]byte](ctx, c, "Filecoin.ChainReadObj", cid)
}

// ChainHasObj reports whether the blockstore holds the given object.
func (c *Client) ChainHasObj(ctx context.Context, cid types.Cid) (bool, error) {
	return call[bool](ctx, c, "Filecoin.ChainHasObj", cid)
}

// ChainGetBlockMessages returns a block's messages split by signature
// scheme.
func (c *Client) ChainGetBlockMessages(ctx context.Context, blockCid types.Cid) (types.BlockMessages, error) {
	return call[types.BlockMessages](ctx, c, "Filecoin.ChainGetBlockMessages", blockCid)
}

// ChainGetPath returns the apply/revert steps from one tipset to another.
func (c *Client) ChainGetPath(ctx context.Context, from, to types.TipsetKey) ([]types.HeadChange, error) {
	return call[[]types.HeadChange](ctx, c, "Filecoin.ChainGetPath", from, to)
}

// ChainGetTipSetByHeight returns the tipset at a height on the chain
// ending at tsk, walking back to the previous non-null round if needed.
func (c *Client) ChainGetTipSetByHeight(ctx context.Context, height int64, tsk types.TipsetKey) (types.TipSet, error) {
	return call[types.TipSet](ctx, c, "Filecoin.ChainGetTipSetByHeight", height, tsk)
}

// ChainGetTipSetAfterHeight is like ChainGetTipSetByHeight but walks
// forward over null rounds.
func (c *Client) ChainGetTipSetAfterHeight(ctx context.Context, height int64, tsk types.TipsetKey) (types.TipSet, error) {
	return call[types.TipSet](ctx, c, "Filecoin.ChainGetTipSetAfterHeight", height, tsk)
}

// ChainGetGenesis returns the genesis tipset as raw JSON.
func (c *Client) ChainGetGenesis(ctx context.Context) (json.RawMessage, error) {
	return call[json.RawMessage](ctx, c, "Filecoin.ChainGetGenesis")
}

// ChainHead returns the current head tipset of the node's chain.
func (c *Client) ChainHead(ctx context.Context) (types.TipSet, error) {
	return call[types.TipSet](ctx, c, "Filecoin.ChainHead")
}

// ChainGetBlock reads a block header by CID.
func (c *Client) ChainGetBlock(ctx context.Context, blockCid types.Cid) (types.BlockHeader, error) {
	return call[types.BlockHeader](ctx, c, "Filecoin.ChainGetBlock", blockCid)
}

// ChainGetTipSet loads a tipset by key.
func (c *Client) ChainGetTipSet(ctx context.Context, tsk types.TipsetKey) (types.TipSet, error) {
	return call[types.TipSet](ctx, c, "Filecoin.ChainGetTipSet", tsk)
}

// ChainSetHead forcibly sets the node's chain head. Development tool;
// use with care.
func (c *Client) ChainSetHead(ctx context.Context, tsk types.TipsetKey) error {
	_, err := c.invoke(ctx, "Filecoin.ChainSetHead", tsk)
	return err
}

// ChainGetMinBaseFee returns the minimum base fee over a lookback window,
// as a decimal string.
func (c *Client) ChainGetMinBaseFee(ctx context.Context, lookback int64) (string, error) {
	return call[string](ctx, c, "Filecoin.ChainGetMinBaseFee", lookback)
}

// ChainTipSetWeight computes the weight of a tipset.
func (c *Client) ChainTipSetWeight(ctx context.Context, tsk types.TipsetKey) (types.BigInt, error) {
	return call[types.BigInt](ctx, c, "Filecoin.ChainTipSetWeight", tsk)
}

// Common

// Session returns the node's session UUID.
func (c *Client) Session(ctx context.Context) (string, error) {
	return call[string](ctx, c, "Filecoin.Session")
}

// Version returns the node build and API version.
func (c *Client) Version(ctx context.Context) (types.APIVersion, error) {
	return call[types.APIVersion](ctx, c, "Filecoin.Version")
}

// Shutdown asks the node to exit.
func (c *Client) Shutdown(ctx context.Context) error {
	_, err := c.invoke(ctx, "Filecoin.Shutdown")
	return err
}

// StartTime returns when the node process started, RFC 3339 formatted.
func (c *Client) StartTime(ctx context.Context) (string, error) {
	return call[string](ctx, c, "Filecoin.StartTime")
}

// Gas

// GasEstimateGasLimit estimates the gas a message will use.
func (c *Client) GasEstimateGasLimit(ctx context.Context, msg types.Message, tsk types.TipsetKey) (int64, error) {
	return call[int64](ctx, c, "Filecoin.GasEstimateGasLimit", msg, tsk)
}

// GasEstimateMessageGas fills in all gas fields of a message. spec may be
// nil.
func (c *Client) GasEstimateMessageGas(ctx context.Context, msg types.Message, spec *types.MessageSendSpec, tsk types.TipsetKey) (types.Message, error) {
	return call[types.Message](ctx, c, "Filecoin.GasEstimateMessageGas", msg, spec, tsk)
}

// GasEstimateFeeCap estimates a fee cap, as a decimal string.
func (c *Client) GasEstimateFeeCap(ctx context.Context, msg types.Message, maxQueueBlocks int64, tsk types.TipsetKey) (string, error) {
	return call[string](ctx, c, "Filecoin.GasEstimateFeeCap", msg, maxQueueBlocks, tsk)
}

// GasEstimateGasPremium estimates the premium needed to be included
// within nblocksincl epochs, as a decimal string.
func (c *Client) GasEstimateGasPremium(ctx context.Context, nblocksincl uint64, sender types.Address, gasLimit int64, tsk types.TipsetKey) (string, error) {
	return call[string](ctx, c, "Filecoin.GasEstimateGasPremium", nblocksincl, sender, gasLimit, tsk)
}

// Mpool

// MpoolGetNonce returns the next nonce for an address, counting pending
// messages.
func (c *Client) MpoolGetNonce(ctx context.Context, addr types.Address) (uint64, error) {
	return call[uint64](ctx, c, "Filecoin.MpoolGetNonce", addr)
}

// MpoolPending returns the messages pending in the message pool.
func (c *Client) MpoolPending(ctx context.Context, tsk types.TipsetKey) ([]types.SignedMessage, error) {
	return call[[]types.SignedMessage](ctx, c, "Filecoin.MpoolPending", tsk)
}

// MpoolSelect picks the messages a miner would include, given a ticket
// quality.
func (c *Client) MpoolSelect(ctx context.Context, tsk types.TipsetKey, ticketQuality float64) ([]types.SignedMessage, error) {
	return call[[]types.SignedMessage](ctx, c, "Filecoin.MpoolSelect", tsk, ticketQuality)
}

// MpoolPush submits a signed message to the pool, returning its CID.
func (c *Client) MpoolPush(ctx context.Context, smsg types.SignedMessage) (types.Cid, error) {
	return call[types.Cid](ctx, c, "Filecoin.MpoolPush", smsg)
}

// MpoolPushMessage estimates gas for, signs, and pushes an unsigned
// message. spec may be nil.
func (c *Client) MpoolPushMessage(ctx context.Context, msg types.Message, spec *types.MessageSendSpec) (types.SignedMessage, error) {
	return call[types.SignedMessage](ctx, c, "Filecoin.MpoolPushMessage", msg, spec)
}

// Net

// NetAddrsListen returns the node's own peer info.
func (c *Client) NetAddrsListen(ctx context.Context) (types.AddrInfo, error) {
	return call[types.AddrInfo](ctx, c, "Filecoin.NetAddrsListen")
}

// NetPeers lists the currently connected peers.
func (c *Client) NetPeers(ctx context.Context) ([]types.AddrInfo, error) {
	return call[[]types.AddrInfo](ctx, c, "Filecoin.NetPeers")
}

// NetListening reports whether the swarm is accepting connections.
func (c *Client) NetListening(ctx context.Context) (bool, error) {
	return call[bool](ctx, c, "Filecoin.NetListening")
}

// NetInfo returns Forest's swarm connection summary. Note the Forest
// namespace: this method is not part of the common Filecoin API.
func (c *Client) NetInfo(ctx context.Context) (types.NetInfo, error) {
	return call[types.NetInfo](ctx, c, "Forest.NetInfo")
}

// NetConnect dials a peer.
func (c *Client) NetConnect(ctx context.Context, info types.AddrInfo) error {
	_, err := c.invoke(ctx, "Filecoin.NetConnect", info)
	return err
}

// NetDisconnect drops the connection to a peer by ID.
func (c *Client) NetDisconnect(ctx context.Context, peerID string) error {
	_, err := c.invoke(ctx, "Filecoin.NetDisconnect", peerID)
	return err
}

// NetAgentVersion returns the agent string advertised by a peer.
func (c *Client) NetAgentVersion(ctx context.Context, peerID string) (string, error) {
	return call[string](ctx, c, "Filecoin.NetAgentVersion", peerID)
}

// NetAutoNatStatus reports the node's NAT reachability.
func (c *Client) NetAutoNatStatus(ctx context.Context) (types.NatStatus, error) {
	return call[types.NatStatus](ctx, c, "Filecoin.NetAutoNatStatus")
}

// NetVersion returns the network name as seen by the p2p layer.
func (c *Client) NetVersion(ctx context.Context) (string, error) {
	return call[string](ctx, c, "Filecoin.NetVersion")
}

// Miner

// MinerGetBaseInfo returns the mining base info for a miner at an epoch,
// or raw JSON null when the miner is ineligible.
func (c *Client) MinerGetBaseInfo(ctx context.Context, addr types.Address, epoch int64, tsk types.TipsetKey) (json.RawMessage, error) {
	return call[json.RawMessage](ctx, c, "Filecoin.MinerGetBaseInfo", addr, epoch, tsk)
}

// State

// StateCall applies a message on top of a tipset without persisting any
// effects.
func (c *Client) StateCall(ctx context.Context, msg types.Message, tsk types.TipsetKey) (types.InvocResult, error) {
	return call[types.InvocResult](ctx, c, "Filecoin.StateCall", msg, tsk)
}

// StateGetBeaconEntry returns the beacon entry for an epoch, waiting for
// it if necessary.
func (c *Client) StateGetBeaconEntry(ctx context.Context, epoch int64) (types.BeaconEntry, error) {
	return call[types.BeaconEntry](ctx, c, "Filecoin.StateGetBeaconEntry", epoch)
}

// StateListMessages returns the CIDs of messages matching the filter, up
// to maxHeight back.
func (c *Client) StateListMessages(ctx context.Context, filter types.MessageFilter, tsk types.TipsetKey, maxHeight int64) ([]types.Cid, error) {
	return call[[]types.Cid](ctx, c, "Filecoin.StateListMessages", filter, tsk, maxHeight)
}

// StateNetworkName returns the network name ("mainnet", "calibnet", ...).
func (c *Client) StateNetworkName(ctx context.Context) (string, error) {
	return call[string](ctx, c, "Filecoin.StateNetworkName")
}

// StateReplay replays a message at the tipset it originally executed in.
func (c *Client) StateReplay(ctx context.Context, msgCid types.Cid, tsk types.TipsetKey) (types.InvocResult, error) {
	return call[types.InvocResult](ctx, c, "Filecoin.StateReplay", msgCid, tsk)
}

// StateSectorGetInfo returns on-chain info for a committed sector, or an
// application error if the sector is unknown.
func (c *Client) StateSectorGetInfo(ctx context.Context, miner types.Address, sectorNumber uint64, tsk types.TipsetKey) (types.SectorOnChainInfo, error) {
	return call[types.SectorOnChainInfo](ctx, c, "Filecoin.StateSectorGetInfo", miner, sectorNumber, tsk)
}

// StateSectorPreCommitInfo returns a sector's pre-commitment.
func (c *Client) StateSectorPreCommitInfo(ctx context.Context, miner types.Address, sectorNumber uint64, tsk types.TipsetKey) (types.SectorPreCommitOnChainInfo, error) {
	return call[types.SectorPreCommitOnChainInfo](ctx, c, "Filecoin.StateSectorPreCommitInfo", miner, sectorNumber, tsk)
}

// StateAccountKey resolves an ID address to its public-key address.
func (c *Client) StateAccountKey(ctx context.Context, addr types.Address, tsk types.TipsetKey) (types.Address, error) {
	return call[types.Address](ctx, c, "Filecoin.StateAccountKey", addr, tsk)
}

// StateLookupID resolves any address to its ID form.
func (c *Client) StateLookupID(ctx context.Context, addr types.Address, tsk types.TipsetKey) (types.Address, error) {
	return call[types.Address](ctx, c, "Filecoin.StateLookupID", addr, tsk)
}

// StateGetActor returns an actor's head as raw JSON; the shape varies by
// actor version.
func (c *Client) StateGetActor(ctx context.Context, addr types.Address, tsk types.TipsetKey) (json.RawMessage, error) {
	return call[json.RawMessage](ctx, c, "Filecoin.StateGetActor", addr, tsk)
}

// StateMinerInfo returns a miner actor's static configuration.
func (c *Client) StateMinerInfo(ctx context.Context, addr types.Address, tsk types.TipsetKey) (types.MinerInfo, error) {
	return call[types.MinerInfo](ctx, c, "Filecoin.StateMinerInfo", addr, tsk)
}

// StateMinerActiveSectors lists a miner's actively proving sectors.
func (c *Client) StateMinerActiveSectors(ctx context.Context, addr types.Address, tsk types.TipsetKey) ([]types.SectorOnChainInfo, error) {
	return call[[]types.SectorOnChainInfo](ctx, c, "Filecoin.StateMinerActiveSectors", addr, tsk)
}

// StateMinerPartitions lists the partitions of one proving deadline.
func (c *Client) StateMinerPartitions(ctx context.Context, addr types.Address, deadlineIndex uint64, tsk types.TipsetKey) ([]types.MinerPartition, error) {
	return call[[]types.MinerPartition](ctx, c, "Filecoin.StateMinerPartitions", addr, deadlineIndex, tsk)
}

// StateMinerSectors lists a miner's sectors, optionally filtered by a
// bitfield of sector numbers (nil for all).
func (c *Client) StateMinerSectors(ctx context.Context, addr types.Address, sectors types.BitField, tsk types.TipsetKey) ([]types.SectorOnChainInfo, error) {
	if sectors == nil {
		sectors = types.BitField("null")
	}
	return call[[]types.SectorOnChainInfo](ctx, c, "Filecoin.StateMinerSectors", addr, sectors, tsk)
}

// StateMinerSectorCount counts a miner's sectors by state.
func (c *Client) StateMinerSectorCount(ctx context.Context, addr types.Address, tsk types.TipsetKey) (types.MinerSectors, error) {
	return call[types.MinerSectors](ctx, c, "Filecoin.StateMinerSectorCount", addr, tsk)
}

// StateMinerPower returns a miner's power claim against the network
// total.
func (c *Client) StateMinerPower(ctx context.Context, addr types.Address, tsk types.TipsetKey) (types.MinerPower, error) {
	return call[types.MinerPower](ctx, c, "Filecoin.StateMinerPower", addr, tsk)
}

// StateMinerDeadlines summarizes all proving deadlines of a miner.
func (c *Client) StateMinerDeadlines(ctx context.Context, addr types.Address, tsk types.TipsetKey) ([]types.Deadline, error) {
	return call[[]types.Deadline](ctx, c, "Filecoin.StateMinerDeadlines", addr, tsk)
}

// StateMinerProvingDeadline locates the miner in its current proving
// period.
func (c *Client) StateMinerProvingDeadline(ctx context.Context, addr types.Address, tsk types.TipsetKey) (types.DeadlineInfo, error) {
	return call[types.DeadlineInfo](ctx, c, "Filecoin.StateMinerProvingDeadline", addr, tsk)
}

// StateMinerFaults returns the bitfield of faulty sectors.
func (c *Client) StateMinerFaults(ctx context.Context, addr types.Address, tsk types.TipsetKey) (types.BitField, error) {
	return call[types.BitField](ctx, c, "Filecoin.StateMinerFaults", addr, tsk)
}

// StateMinerRecoveries returns the bitfield of recovering sectors.
func (c *Client) StateMinerRecoveries(ctx context.Context, addr types.Address, tsk types.TipsetKey) (types.BitField, error) {
	return call[types.BitField](ctx, c, "Filecoin.StateMinerRecoveries", addr, tsk)
}

// StateMinerAvailableBalance returns the funds a miner can withdraw.
func (c *Client) StateMinerAvailableBalance(ctx context.Context, addr types.Address, tsk types.TipsetKey) (types.TokenAmount, error) {
	return call[types.TokenAmount](ctx, c, "Filecoin.StateMinerAvailableBalance", addr, tsk)
}

// StateMinerInitialPledgeCollateral computes the pledge required to
// commit the described sector.
func (c *Client) StateMinerInitialPledgeCollateral(ctx context.Context, addr types.Address, info types.SectorPreCommitInfo, tsk types.TipsetKey) (types.TokenAmount, error) {
	return call[types.TokenAmount](ctx, c, "Filecoin.StateMinerInitialPledgeCollateral", addr, info, tsk)
}

// StateGetReceipt returns the receipt of an executed message.
func (c *Client) StateGetReceipt(ctx context.Context, msgCid types.Cid, tsk types.TipsetKey) (types.Receipt, error) {
	return call[types.Receipt](ctx, c, "Filecoin.StateGetReceipt", msgCid, tsk)
}

// StateGetRandomnessFromTickets draws chain randomness for an epoch.
func (c *Client) StateGetRandomnessFromTickets(ctx context.Context, personalization int64, randEpoch int64, entropy []byte, tsk types.TipsetKey) ([]byte, error) {
	return call[[]byte](ctx, c, "Filecoin.StateGetRandomnessFromTickets", personalization, randEpoch, entropy, tsk)
}

// StateGetRandomnessFromBeacon draws beacon randomness for an epoch.
func (c *Client) StateGetRandomnessFromBeacon(ctx context.Context, personalization int64, randEpoch int64, entropy []byte, tsk types.TipsetKey) ([]byte, error) {
	return call[[]byte](ctx, c, "Filecoin.StateGetRandomnessFromBeacon", personalization, randEpoch, entropy, tsk)
}

// StateReadState returns an actor's balance, code, and resolved state.
func (c *Client) StateReadState(ctx context.Context, addr types.Address, tsk types.TipsetKey) (types.ActorState, error) {
	return call[types.ActorState](ctx, c, "Filecoin.StateReadState", addr, tsk)
}

// StateCirculatingSupply returns the exact circulating supply at a
// tipset.
func (c *Client) StateCirculatingSupply(ctx context.Context, tsk types.TipsetKey) (types.TokenAmount, error) {
	return call[types.TokenAmount](ctx, c, "Filecoin.StateCirculatingSupply", tsk)
}

// MsigGetAvailableBalance returns the spendable balance of a multisig.
func (c *Client) MsigGetAvailableBalance(ctx context.Context, addr types.Address, tsk types.TipsetKey) (types.TokenAmount, error) {
	return call[types.TokenAmount](ctx, c, "Filecoin.MsigGetAvailableBalance", addr, tsk)
}

// MsigGetPending lists a multisig's pending transactions.
func (c *Client) MsigGetPending(ctx context.Context, addr types.Address, tsk types.TipsetKey) ([]types.MsigTransaction, error) {
	return call[[]types.MsigTransaction](ctx, c, "Filecoin.MsigGetPending", addr, tsk)
}

// StateVerifiedClientStatus returns a verified client's datacap as raw
// JSON, or null if the address is not a verified client.
func (c *Client) StateVerifiedClientStatus(ctx context.Context, addr types.Address, tsk types.TipsetKey) (json.RawMessage, error) {
	return call[json.RawMessage](ctx, c, "Filecoin.StateVerifiedClientStatus", addr, tsk)
}

// StateVMCirculatingSupplyInternal breaks the supply down the way the VM
// sees it.
func (c *Client) StateVMCirculatingSupplyInternal(ctx context.Context, tsk types.TipsetKey) (types.CirculatingSupply, error) {
	return call[types.CirculatingSupply](ctx, c, "Filecoin.StateVMCirculatingSupplyInternal", tsk)
}

// StateListMiners lists all miner actors in the state tree.
func (c *Client) StateListMiners(ctx context.Context, tsk types.TipsetKey) ([]types.Address, error) {
	return call[[]types.Address](ctx, c, "Filecoin.StateListMiners", tsk)
}

// StateNetworkVersion returns the network protocol version at a tipset.
func (c *Client) StateNetworkVersion(ctx context.Context, tsk types.TipsetKey) (int64, error) {
	return call[int64](ctx, c, "Filecoin.StateNetworkVersion", tsk)
}

// StateMarketBalance returns an address's escrow and locked market funds.
func (c *Client) StateMarketBalance(ctx context.Context, addr types.Address, tsk types.TipsetKey) (types.MarketBalance, error) {
	return call[types.MarketBalance](ctx, c, "Filecoin.StateMarketBalance", addr, tsk)
}

// StateMarketDeals returns all storage deals as raw JSON, keyed by deal
// ID. The full map can be very large.
func (c *Client) StateMarketDeals(ctx context.Context, tsk types.TipsetKey) (json.RawMessage, error) {
	return call[json.RawMessage](ctx, c, "Filecoin.StateMarketDeals", tsk)
}

// StateDealProviderCollateralBounds returns the allowed provider
// collateral range for a deal of the given size.
func (c *Client) StateDealProviderCollateralBounds(ctx context.Context, size uint64, verified bool, tsk types.TipsetKey) (types.DealCollateralBounds, error) {
	return call[types.DealCollateralBounds](ctx, c, "Filecoin.StateDealProviderCollateralBounds", size, verified, tsk)
}

// StateMarketStorageDeal returns one storage deal by ID.
func (c *Client) StateMarketStorageDeal(ctx context.Context, dealID uint64, tsk types.TipsetKey) (types.MarketDeal, error) {
	return call[types.MarketDeal](ctx, c, "Filecoin.StateMarketStorageDeal", dealID, tsk)
}

// StateWaitMsg blocks until the message lands on chain with the given
// confidence, then returns where and how it executed.
func (c *Client) StateWaitMsg(ctx context.Context, msgCid types.Cid, confidence int64) (types.MessageLookup, error) {
	return call[types.MessageLookup](ctx, c, "Filecoin.StateWaitMsg", msgCid, confidence)
}

// StateSearchMsg looks back for an already-executed message.
func (c *Client) StateSearchMsg(ctx context.Context, msgCid types.Cid) (types.MessageLookup, error) {
	return call[types.MessageLookup](ctx, c, "Filecoin.StateSearchMsg", msgCid)
}

// StateSearchMsgLimited is StateSearchMsg with a bounded lookback.
func (c *Client) StateSearchMsgLimited(ctx context.Context, msgCid types.Cid, lookbackLimit int64) (types.MessageLookup, error) {
	return call[types.MessageLookup](ctx, c, "Filecoin.StateSearchMsgLimited", msgCid, lookbackLimit)
}

// StateFetchRoot fetches the state tree under a root CID, optionally
// saving it to a file on the node. saveToFile may be empty.
func (c *Client) StateFetchRoot(ctx context.Context, rootCid types.Cid, saveToFile string) (string, error) {
	var path any
	if saveToFile != "" {
		path = saveToFile
	}
	return call[string](ctx, c, "Filecoin.StateFetchRoot", rootCid, path)
}

// StateMinerPreCommitDepositForPower computes the deposit required to
// pre-commit the described sector.
func (c *Client) StateMinerPreCommitDepositForPower(ctx context.Context, addr types.Address, info types.SectorPreCommitInfo, tsk types.TipsetKey) (types.TokenAmount, error) {
	return call[types.TokenAmount](ctx, c, "Filecoin.StateMinerPreCommitDepositForPower", addr, info, tsk)
}

// Node

// NodeStatus aggregates the node's sync, peer, and chain health.
func (c *Client) NodeStatus(ctx context.Context) (types.NodeStatus, error) {
	return call[types.NodeStatus](ctx, c, "Filecoin.NodeStatus")
}

// Sync

// SyncCheckBad reports why a block is marked bad, or "" if it is not.
func (c *Client) SyncCheckBad(ctx context.Context, blockCid types.Cid) (string, error) {
	return call[string](ctx, c, "Filecoin.SyncCheckBad", blockCid)
}

// SyncMarkBad marks a block (and its descendants) as bad.
func (c *Client) SyncMarkBad(ctx context.Context, blockCid types.Cid) error {
	_, err := c.invoke(ctx, "Filecoin.SyncMarkBad", blockCid)
	return err
}

// SyncState reports all active syncs.
func (c *Client) SyncState(ctx context.Context) (types.RPCSyncState, error) {
	return call[types.RPCSyncState](ctx, c, "Filecoin.SyncState")
}

// SyncSubmitBlock submits a newly mined block for validation and
// propagation.
func (c *Client) SyncSubmitBlock(ctx context.Context, blk types.GossipBlock) error {
	_, err := c.invoke(ctx, "Filecoin.SyncSubmitBlock", blk)
	return err
}

// Wallet

// WalletBalance returns an address's balance, in attoFIL.
func (c *Client) WalletBalance(ctx context.Context, addr types.Address) (types.TokenAmount, error) {
	return call[types.TokenAmount](ctx, c, "Filecoin.WalletBalance", addr)
}

// WalletDefaultAddress returns the default wallet address as raw JSON, or
// null when the wallet is empty.
func (c *Client) WalletDefaultAddress(ctx context.Context) (json.RawMessage, error) {
	return call[json.RawMessage](ctx, c, "Filecoin.WalletDefaultAddress")
}

// WalletExport exports an address's key material.
func (c *Client) WalletExport(ctx context.Context, addr types.Address) (types.KeyInfo, error) {
	return call[types.KeyInfo](ctx, c, "Filecoin.WalletExport", addr)
}

// WalletHas reports whether the wallet holds a key for the address.
func (c *Client) WalletHas(ctx context.Context, addr types.Address) (bool, error) {
	return call[bool](ctx, c, "Filecoin.WalletHas", addr)
}

// WalletImport imports key material, returning the resulting address.
func (c *Client) WalletImport(ctx context.Context, key types.KeyInfo) (types.Address, error) {
	return call[types.Address](ctx, c, "Filecoin.WalletImport", key)
}

// WalletList lists the wallet's addresses.
func (c *Client) WalletList(ctx context.Context) ([]types.Address, error) {
	return call[[]types.Address](ctx, c, "Filecoin.WalletList")
}

// WalletNew creates a key of the given signature type and returns its
// address.
func (c *Client) WalletNew(ctx context.Context, sigType types.SignatureType) (types.Address, error) {
	return call[types.Address](ctx, c, "Filecoin.WalletNew", sigType)
}

// WalletSetDefault marks an address as the wallet default.
func (c *Client) WalletSetDefault(ctx context.Context, addr types.Address) error {
	_, err := c.invoke(ctx, "Filecoin.WalletSetDefault", addr)
	return err
}

// WalletSign signs arbitrary bytes with an address's key.
func (c *Client) WalletSign(ctx context.Context, addr types.Address, data []byte) (types.Signature, error) {
	return call[types.Signature](ctx, c, "Filecoin.WalletSign", addr, data)
}

// WalletValidateAddress parses and normalizes an address string.
func (c *Client) WalletValidateAddress(ctx context.Context, addr string) (types.Address, error) {
	return call[types.Address](ctx, c, "Filecoin.WalletValidateAddress", addr)
}

// WalletVerify checks a signature over the given bytes.
func (c *Client) WalletVerify(ctx context.Context, addr types.Address, data []byte, sig types.Signature) (bool, error) {
	return call[bool](ctx, c, "Filecoin.WalletVerify", addr, data, sig)
}

// WalletDelete removes an address's key from the wallet.
func (c *Client) WalletDelete(ctx context.Context, addr types.Address) error {
	_, err := c.invoke(ctx, "Filecoin.WalletDelete", addr)
	return err
}

// Eth compatibility

// Web3ClientVersion returns the node's client version string.
func (c *Client) Web3ClientVersion(ctx context.Context) (string, error) {
	return call[string](ctx, c, "Filecoin.Web3ClientVersion")
}

// EthSyncing reports sync progress in the Ethereum view.
func (c *Client) EthSyncing(ctx context.Context) (types.EthSyncingResult, error) {
	return call[types.EthSyncingResult](ctx, c, "Filecoin.EthSyncing")
}

// EthAccounts lists the node's Ethereum accounts (always empty on
// Forest).
func (c *Client) EthAccounts(ctx context.Context) ([]string, error) {
	return call[[]string](ctx, c, "Filecoin.EthAccounts")
}

// EthBlockNumber returns the latest block number as a hex quantity.
func (c *Client) EthBlockNumber(ctx context.Context) (string, error) {
	return call[string](ctx, c, "Filecoin.EthBlockNumber")
}

// EthChainId returns the chain ID as a hex quantity.
func (c *Client) EthChainId(ctx context.Context) (string, error) {
	return call[string](ctx, c, "Filecoin.EthChainId")
}

// EthGasPrice returns the current gas price.
func (c *Client) EthGasPrice(ctx context.Context) (types.EthBigInt, error) {
	return call[types.EthBigInt](ctx, c, "Filecoin.EthGasPrice")
}

// EthGetBalance returns an Ethereum address's balance at a block.
func (c *Client) EthGetBalance(ctx context.Context, addr types.EthAddress, blockParam string) (types.EthBigInt, error) {
	return call[types.EthBigInt](ctx, c, "Filecoin.EthGetBalance", addr, blockParam)
}

// EthGetBlockByNumber returns a block in the Ethereum view.
func (c *Client) EthGetBlockByNumber(ctx context.Context, blockParam string, fullTxInfo bool) (types.EthBlock, error) {
	return call[types.EthBlock](ctx, c, "Filecoin.EthGetBlockByNumber", blockParam, fullTxInfo)
}
