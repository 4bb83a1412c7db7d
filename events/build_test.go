package events

import (
	"errors"
	"testing"
	"time"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/require"

	"github.com/walletmesh/nwc/types"
)

type fakeEncryptor struct {
	lastPlaintext string
	lastRecipient string
	err           error
}

func (f *fakeEncryptor) Encrypt(plaintext, recipientPubKey string) (string, error) {
	f.lastPlaintext = plaintext
	f.lastRecipient = recipientPubKey
	if f.err != nil {
		return "", f.err
	}
	return "sealed:" + plaintext, nil
}

func TestBuildRequestEvent(t *testing.T) {
	secret := nostr.GeneratePrivateKey()
	senderPub, err := nostr.GetPublicKey(secret)
	require.NoError(t, err)
	walletPub, err := nostr.GetPublicKey(nostr.GeneratePrivateKey())
	require.NoError(t, err)

	createdAt := time.Unix(1700000000, 0)
	enc := &fakeEncryptor{}

	ev, err := BuildRequestEvent(types.NewPayInvoiceRequest("lnbc10n1..."), walletPub, secret, createdAt, enc)
	require.NoError(t, err)

	require.Equal(t, KindWalletRequest, ev.Kind)
	require.Equal(t, nostr.Timestamp(1700000000), ev.CreatedAt)
	require.Equal(t, senderPub, ev.PubKey)
	require.NotEmpty(t, ev.ID)

	require.Len(t, ev.Tags, 1)
	require.Equal(t, nostr.Tag{"p", walletPub}, ev.Tags[0])

	require.Equal(t, "sealed:"+enc.lastPlaintext, ev.Content)
	require.JSONEq(t, `{"method":"pay_invoice","params":{"invoice":"lnbc10n1..."}}`, enc.lastPlaintext)
	require.Equal(t, walletPub, enc.lastRecipient)

	ok, err := ev.CheckSignature()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBuildRequestEventEncryptFailure(t *testing.T) {
	secret := nostr.GeneratePrivateKey()
	walletPub, err := nostr.GetPublicKey(nostr.GeneratePrivateKey())
	require.NoError(t, err)

	enc := &fakeEncryptor{err: errors.New("boom")}
	ev, err := BuildRequestEvent(types.NewBalanceRequest(), walletPub, secret, time.Now(), enc)
	require.Error(t, err)
	require.Nil(t, ev)
}

func TestBuildRequestEventSerializeFailure(t *testing.T) {
	secret := nostr.GeneratePrivateKey()
	walletPub, err := nostr.GetPublicKey(nostr.GeneratePrivateKey())
	require.NoError(t, err)

	req := types.WalletRequest{Method: "pay_invoice", Params: make(chan int)}
	ev, err := BuildRequestEvent(req, walletPub, secret, time.Now(), &fakeEncryptor{})
	require.Error(t, err)
	require.Nil(t, ev)
}
