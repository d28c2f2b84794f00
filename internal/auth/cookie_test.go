package auth

import (
	"encoding/base64"
	"strings"
	"testing"
)

const testSecret = "segredo-de-teste"

func TestCookieRoundTrip(t *testing.T) {
	value := EncodeCookie(42, "abc123", testSecret)

	userID, token, ok := DecodeCookie(value, testSecret)
	if !ok {
		t.Fatal("cookie recém emitido foi rejeitado")
	}
	if userID != 42 {
		t.Fatalf("user_id: got %d, want 42", userID)
	}
	if token != "abc123" {
		t.Fatalf("token: got %s, want abc123", token)
	}
}

func TestCookieWrongSecret(t *testing.T) {
	value := EncodeCookie(42, "abc123", testSecret)

	if _, _, ok := DecodeCookie(value, "outro-segredo"); ok {
		t.Fatal("cookie aceito com segredo errado")
	}
}

func TestCookieTamperedPayload(t *testing.T) {
	value := EncodeCookie(42, "abc123", testSecret)
	parts := strings.SplitN(value, ".", 2)

	// Troca o user_id no payload mantendo a assinatura original.
	forged := base64.StdEncoding.EncodeToString(
		[]byte(`{"user_id":1,"token":"abc123"}`))
	if _, _, ok := DecodeCookie(forged+"."+parts[1], testSecret); ok {
		t.Fatal("payload adulterado passou na verificação de assinatura")
	}
}

func TestCookieTamperedSignature(t *testing.T) {
	value := EncodeCookie(42, "abc123", testSecret)

	flipped := value[:len(value)-1]
	if strings.HasSuffix(value, "0") {
		flipped += "1"
	} else {
		flipped += "0"
	}
	if _, _, ok := DecodeCookie(flipped, testSecret); ok {
		t.Fatal("assinatura alterada foi aceita")
	}
}

func TestCookieMalformed(t *testing.T) {
	cases := []string{
		"",
		"sem-ponto",
		"a.b.c",
		"%%%." + signCookie("%%%", testSecret),
		base64.StdEncoding.EncodeToString([]byte("nao-e-json")) + "." +
			signCookie(base64.StdEncoding.EncodeToString([]byte("nao-e-json")), testSecret),
	}
	for _, value := range cases {
		if _, _, ok := DecodeCookie(value, testSecret); ok {
			t.Fatalf("valor malformado aceito: %q", value)
		}
	}
}

func TestCookieRejectsEmptyPayloadFields(t *testing.T) {
	for _, raw := range []string{
		`{"user_id":0,"token":"abc"}`,
		`{"user_id":7,"token":""}`,
	} {
		encoded := base64.StdEncoding.EncodeToString([]byte(raw))
		value := encoded + "." + signCookie(encoded, testSecret)
		if _, _, ok := DecodeCookie(value, testSecret); ok {
			t.Fatalf("payload incompleto aceito: %s", raw)
		}
	}
}
