package client

import "github.com/ChainSafe/forest-rpc/codec"

// Method describes one remote operation: its full name, the encoding rule
// for each parameter position, and the decoding rule for its result.
// Descriptors are immutable and shared read-only by every Client; identity
// is the method name.
type Method struct {
	Name   string
	Params []codec.ParamKind
	Result codec.ResultKind
}

// Shorthands keeping the catalog table readable.
const (
	scalar = codec.ParamScalar
	typed  = codec.ParamTyped
)

func params(kinds ...codec.ParamKind) []codec.ParamKind {
	return kinds
}

// Methods is the static catalog of every remote operation the client
// exposes, grouped the way the node groups its API. The parameter count
// and order of each entry must match the remote signature exactly; the
// typed methods in methods.go are written against this table, so a
// mismatch is a programming defect rather than a runtime condition.
var Methods = []Method{
	// Auth
	{"Filecoin.AuthNew", params(typed), codec.ResultTyped},
	{"Filecoin.AuthVerify", params(scalar), codec.ResultTyped},

	// Beacon
	{"Filecoin.BeaconGetEntry", params(scalar), codec.ResultTyped},

	// Chain
	{"Filecoin.ChainGetMessage", params(typed), codec.ResultTyped},
	{"Filecoin.ChainGetParentMessages", params(typed), codec.ResultTyped},
	{"Filecoin.ChainGetParentReceipts", params(typed), codec.ResultTyped},
	{"Filecoin.ChainGetMessagesInTipset", params(typed), codec.ResultTyped},
	{"Filecoin.ChainExport", params(typed), codec.ResultOpaque},
	{"Filecoin.ChainReadObj", params(typed), codec.ResultTyped},
	{"Filecoin.ChainHasObj", params(typed), codec.ResultScalar},
	{"Filecoin.ChainGetBlockMessages", params(typed), codec.ResultTyped},
	{"Filecoin.ChainGetPath", params(typed, typed), codec.ResultTyped},
	{"Filecoin.ChainGetTipSetByHeight", params(scalar, typed), codec.ResultTyped},
	{"Filecoin.ChainGetTipSetAfterHeight", params(scalar, typed), codec.ResultTyped},
	{"Filecoin.ChainGetGenesis", params(), codec.ResultOpaque},
	{"Filecoin.ChainHead", params(), codec.ResultTyped},
	{"Filecoin.ChainGetBlock", params(typed), codec.ResultTyped},
	{"Filecoin.ChainGetTipSet", params(typed), codec.ResultTyped},
	{"Filecoin.ChainSetHead", params(typed), codec.ResultNull},
	{"Filecoin.ChainGetMinBaseFee", params(scalar), codec.ResultScalar},
	{"Filecoin.ChainTipSetWeight", params(typed), codec.ResultTyped},

	// Common
	{"Filecoin.Session", params(), codec.ResultScalar},
	{"Filecoin.Version", params(), codec.ResultTyped},
	{"Filecoin.Shutdown", params(), codec.ResultNull},
	{"Filecoin.StartTime", params(), codec.ResultScalar},

	// Gas
	{"Filecoin.GasEstimateGasLimit", params(typed, typed), codec.ResultScalar},
	{"Filecoin.GasEstimateMessageGas", params(typed, scalar, typed), codec.ResultTyped},
	{"Filecoin.GasEstimateFeeCap", params(typed, scalar, typed), codec.ResultScalar},
	{"Filecoin.GasEstimateGasPremium", params(scalar, typed, scalar, typed), codec.ResultScalar},

	// Mpool
	{"Filecoin.MpoolGetNonce", params(typed), codec.ResultScalar},
	{"Filecoin.MpoolPending", params(typed), codec.ResultTyped},
	{"Filecoin.MpoolSelect", params(typed, scalar), codec.ResultTyped},
	{"Filecoin.MpoolPush", params(typed), codec.ResultTyped},
	{"Filecoin.MpoolPushMessage", params(typed, scalar), codec.ResultTyped},

	// Net
	{"Filecoin.NetAddrsListen", params(), codec.ResultTyped},
	{"Filecoin.NetPeers", params(), codec.ResultTyped},
	{"Filecoin.NetListening", params(), codec.ResultScalar},
	{"Forest.NetInfo", params(), codec.ResultTyped},
	{"Filecoin.NetConnect", params(typed), codec.ResultNull},
	{"Filecoin.NetDisconnect", params(scalar), codec.ResultNull},
	{"Filecoin.NetAgentVersion", params(scalar), codec.ResultScalar},
	{"Filecoin.NetAutoNatStatus", params(), codec.ResultTyped},
	{"Filecoin.NetVersion", params(), codec.ResultScalar},

	// Miner
	{"Filecoin.MinerGetBaseInfo", params(typed, scalar, typed), codec.ResultOpaque},

	// State
	{"Filecoin.StateCall", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateGetBeaconEntry", params(scalar), codec.ResultTyped},
	{"Filecoin.StateListMessages", params(typed, typed, scalar), codec.ResultTyped},
	{"Filecoin.StateNetworkName", params(), codec.ResultScalar},
	{"Filecoin.StateReplay", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateSectorGetInfo", params(typed, scalar, typed), codec.ResultTyped},
	{"Filecoin.StateSectorPreCommitInfo", params(typed, scalar, typed), codec.ResultTyped},
	{"Filecoin.StateAccountKey", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateLookupID", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateGetActor", params(typed, typed), codec.ResultOpaque},
	{"Filecoin.StateMinerInfo", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateMinerActiveSectors", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateMinerPartitions", params(typed, scalar, typed), codec.ResultTyped},
	{"Filecoin.StateMinerSectors", params(typed, scalar, typed), codec.ResultTyped},
	{"Filecoin.StateMinerSectorCount", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateMinerPower", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateMinerDeadlines", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateMinerProvingDeadline", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateMinerFaults", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateMinerRecoveries", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateMinerAvailableBalance", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateMinerInitialPledgeCollateral", params(typed, typed, typed), codec.ResultTyped},
	{"Filecoin.StateGetReceipt", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateGetRandomnessFromTickets", params(scalar, scalar, typed, typed), codec.ResultTyped},
	{"Filecoin.StateGetRandomnessFromBeacon", params(scalar, scalar, typed, typed), codec.ResultTyped},
	{"Filecoin.StateReadState", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateCirculatingSupply", params(typed), codec.ResultTyped},
	{"Filecoin.MsigGetAvailableBalance", params(typed, typed), codec.ResultTyped},
	{"Filecoin.MsigGetPending", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateVerifiedClientStatus", params(typed, typed), codec.ResultOpaque},
	{"Filecoin.StateVMCirculatingSupplyInternal", params(typed), codec.ResultTyped},
	{"Filecoin.StateListMiners", params(typed), codec.ResultTyped},
	{"Filecoin.StateNetworkVersion", params(typed), codec.ResultScalar},
	{"Filecoin.StateMarketBalance", params(typed, typed), codec.ResultTyped},
	{"Filecoin.StateMarketDeals", params(typed), codec.ResultOpaque},
	{"Filecoin.StateDealProviderCollateralBounds", params(scalar, scalar, typed), codec.ResultTyped},
	{"Filecoin.StateMarketStorageDeal", params(scalar, typed), codec.ResultTyped},
	{"Filecoin.StateWaitMsg", params(typed, scalar), codec.ResultTyped},
	{"Filecoin.StateSearchMsg", params(typed), codec.ResultTyped},
	{"Filecoin.StateSearchMsgLimited", params(typed, scalar), codec.ResultTyped},
	{"Filecoin.StateFetchRoot", params(typed, scalar), codec.ResultScalar},
	{"Filecoin.StateMinerPreCommitDepositForPower", params(typed, typed, typed), codec.ResultTyped},

	// Node
	{"Filecoin.NodeStatus", params(), codec.ResultTyped},

	// Sync
	{"Filecoin.SyncCheckBad", params(typed), codec.ResultScalar},
	{"Filecoin.SyncMarkBad", params(typed), codec.ResultNull},
	{"Filecoin.SyncState", params(), codec.ResultTyped},
	{"Filecoin.SyncSubmitBlock", params(typed), codec.ResultNull},

	// Wallet
	{"Filecoin.WalletBalance", params(typed), codec.ResultTyped},
	{"Filecoin.WalletDefaultAddress", params(), codec.ResultOpaque},
	{"Filecoin.WalletExport", params(typed), codec.ResultTyped},
	{"Filecoin.WalletHas", params(typed), codec.ResultScalar},
	{"Filecoin.WalletImport", params(typed), codec.ResultTyped},
	{"Filecoin.WalletList", params(), codec.ResultTyped},
	{"Filecoin.WalletNew", params(typed), codec.ResultTyped},
	{"Filecoin.WalletSetDefault", params(typed), codec.ResultNull},
	{"Filecoin.WalletSign", params(typed, typed), codec.ResultTyped},
	{"Filecoin.WalletValidateAddress", params(scalar), codec.ResultTyped},
	{"Filecoin.WalletVerify", params(typed, typed, typed), codec.ResultScalar},
	{"Filecoin.WalletDelete", params(typed), codec.ResultNull},

	// Eth compatibility
	{"Filecoin.Web3ClientVersion", params(), codec.ResultScalar},
	{"Filecoin.EthSyncing", params(), codec.ResultTyped},
	{"Filecoin.EthAccounts", params(), codec.ResultTyped},
	{"Filecoin.EthBlockNumber", params(), codec.ResultScalar},
	{"Filecoin.EthChainId", params(), codec.ResultScalar},
	{"Filecoin.EthGasPrice", params(), codec.ResultTyped},
	{"Filecoin.EthGetBalance", params(typed, scalar), codec.ResultTyped},
	{"Filecoin.EthGetBlockByNumber", params(scalar, scalar), codec.ResultTyped},
}

// catalog indexes Methods by name. Built once at init; duplicate names are
// a defect in the table itself.
var catalog = func() map[string]Method {
	m := make(map[string]Method, len(Methods))
	for _, method := range Methods {
		if _, dup := m[method.Name]; dup {
			panic("rpc: duplicate catalog entry " + method.Name)
		}
		m[method.Name] = method
	}
	return m
}()

// Lookup returns the descriptor for a full method name, e.g.
// "Filecoin.ChainHead".
func Lookup(name string) (Method, bool) {
	m, ok := catalog[name]
	return m, ok
}
