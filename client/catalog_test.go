package client

import (
	"strings"
	"testing"

	"github.com/ChainSafe/forest-rpc/codec"
)

func TestLookup(t *testing.T) {
	m, ok := Lookup("Filecoin.ChainHead")
	if !ok {
		t.Fatal("expect ChainHead in catalog")
	}
	if len(m.Params) != 0 {
		t.Fatalf("expect ChainHead to take no params, got %d", len(m.Params))
	}
	if m.Result != codec.ResultTyped {
		t.Fatalf("expect typed result, got %s", m.Result)
	}

	if _, ok := Lookup("Filecoin.NoSuchMethod"); ok {
		t.Fatal("expect unknown method to miss")
	}
}

func TestCatalogNamespaces(t *testing.T) {
	for _, m := range Methods {
		if !strings.HasPrefix(m.Name, "Filecoin.") && !strings.HasPrefix(m.Name, "Forest.") {
			t.Errorf("method %q outside known namespaces", m.Name)
		}
	}
}

func TestCatalogEntries(t *testing.T) {
	// Spot-check entries against the remote API's parameter shapes.
	cases := []struct {
		name   string
		params []codec.ParamKind
		result codec.ResultKind
	}{
		{"Filecoin.WalletBalance", []codec.ParamKind{codec.ParamTyped}, codec.ResultTyped},
		{"Filecoin.ChainGetBlock", []codec.ParamKind{codec.ParamTyped}, codec.ResultTyped},
		{"Filecoin.ChainSetHead", []codec.ParamKind{codec.ParamTyped}, codec.ResultNull},
		{"Filecoin.StateMarketDeals", []codec.ParamKind{codec.ParamTyped}, codec.ResultOpaque},
		{"Filecoin.GasEstimateGasPremium", []codec.ParamKind{codec.ParamScalar, codec.ParamTyped, codec.ParamScalar, codec.ParamTyped}, codec.ResultScalar},
		{"Forest.NetInfo", nil, codec.ResultTyped},
	}

	for _, c := range cases {
		m, ok := Lookup(c.name)
		if !ok {
			t.Fatalf("%s missing from catalog", c.name)
		}
		if len(m.Params) != len(c.params) {
			t.Fatalf("%s: expect %d params, got %d", c.name, len(c.params), len(m.Params))
		}
		for i := range c.params {
			if m.Params[i] != c.params[i] {
				t.Errorf("%s param %d: expect %s, got %s", c.name, i, c.params[i], m.Params[i])
			}
		}
		if m.Result != c.result {
			t.Errorf("%s: expect %s result, got %s", c.name, c.result, m.Result)
		}
	}
}

func TestInvokeUncatalogedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expect panic for uncataloged method")
		}
	}()

	c := New(nil)
	c.invoke(nil, "Filecoin.NoSuchMethod")
}

func TestInvokeArityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expect panic for wrong arity")
		}
	}()

	c := New(nil)
	c.invoke(nil, "Filecoin.WalletBalance")
}
