package imports

import (
	"strings"
	"testing"

	"github.com/hexops/autogold"
	"github.com/stretchr/testify/assert"
)

const transferTemplate = `{{ import "FungibleToken" }}
{{ import "ArenaToken" }}

transaction(recipient: Address, amount: UFix64) {
    // ArenaToken.Vault is withdrawn from the signer
}`

var defaultMapping = Mapping{
	{Name: "ArenaToken", Address: "0xf8d6e0586b0a20c7"},
	{Name: "FungibleToken", Address: "ee82856bf20e2aa6"},
}

func TestResolve_ReplacesPlaceholders(t *testing.T) {
	got := Resolve(transferTemplate, defaultMapping)

	want := autogold.Want("resolved transfer template", `import "FungibleToken" from 0xee82856bf20e2aa6
import "ArenaToken" from 0xf8d6e0586b0a20c7

transaction(recipient: Address, amount: UFix64) {
    // ArenaToken.Vault is withdrawn from the signer
}`)
	want.Equal(t, got)

	for _, c := range defaultMapping {
		assert.NotContains(t, got, Placeholder(c.Name))
	}
}

func TestResolve_ReplacesEveryOccurrence(t *testing.T) {
	tpl := Placeholder("ArenaToken") + "\n" + Placeholder("ArenaToken")

	got := Resolve(tpl, Mapping{{Name: "ArenaToken", Address: "01"}})

	assert.Equal(t, `import "ArenaToken" from 0x01`+"\n"+`import "ArenaToken" from 0x01`, got)
}

func TestResolve_NoPlaceholders(t *testing.T) {
	tpl := "access(all) fun main(): Int { return 42 }"
	assert.Equal(t, tpl, Resolve(tpl, defaultMapping))
}

func TestResolve_UnmatchedEntryIgnored(t *testing.T) {
	tpl := Placeholder("ArenaToken") + "\ntransaction {}"
	mapping := Mapping{
		{Name: "ArenaToken", Address: "0x01"},
		{Name: "NonFungibleToken", Address: "0x02"},
	}

	got := Resolve(tpl, mapping)

	assert.Equal(t, `import "ArenaToken" from 0x01`+"\ntransaction {}", got)
}

func TestResolve_UnknownPlaceholderLeftInPlace(t *testing.T) {
	tpl := Placeholder("MetadataViews") + "\n" + Placeholder("ArenaToken")

	got := Resolve(tpl, Mapping{{Name: "ArenaToken", Address: "0x01"}})

	assert.True(t, strings.HasPrefix(got, Placeholder("MetadataViews")))
	assert.Equal(t, []string{"MetadataViews"}, Unresolved(got))
}

func TestResolve_OrderIndependent(t *testing.T) {
	reversed := Mapping{defaultMapping[1], defaultMapping[0]}
	assert.Equal(t, Resolve(transferTemplate, defaultMapping), Resolve(transferTemplate, reversed))
}

func TestResolve_NotRecursive(t *testing.T) {
	// an address that contains the placeholder itself is inserted verbatim
	tpl := Placeholder("A")

	got := Resolve(tpl, Mapping{{Name: "A", Address: `{{ import "A" }}`}})

	assert.Equal(t, `import "A" from 0x{{ import "A" }}`, got)
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{name: "without prefix", address: "f8d6e0586b0a20c7", want: "0xf8d6e0586b0a20c7"},
		{name: "with prefix", address: "0xf8d6e0586b0a20c7", want: "0xf8d6e0586b0a20c7"},
		{name: "short", address: "123", want: "0x123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAddress(tt.address)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeAddress(got), "normalization should be idempotent")
		})
	}
}

func TestUnresolved(t *testing.T) {
	assert.Equal(t, []string{"FungibleToken", "ArenaToken"}, Unresolved(transferTemplate+"\n"+Placeholder("ArenaToken")))
	assert.Empty(t, Unresolved(Resolve(transferTemplate, defaultMapping)))
}
