package value

import (
	"encoding/base64"
	"net/mail"
	"net/url"
	"strings"

	"github.com/wrenfield/icalgo/icalerr"
)

// binaryCodec implements RFC 5545 §3.3.1: base64, always ENCODING=BASE64.
type binaryCodec struct{}

func (binaryCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		if mode == Lenient {
			if data2, err2 := base64.RawStdEncoding.DecodeString(strings.TrimRight(raw, "=")); err2 == nil {
				return Value{Kind: KindBinary, Binary: data2}, []icalerr.Warning{{
					Code: icalerr.CodeTypeBinary, Message: "BASE64 padding corrected", Raw: raw,
				}}, nil
			}
		}
		return Value{}, nil, icalerr.Wrap(icalerr.KindType, icalerr.CodeTypeBinary, err, 0, raw)
	}
	return Value{Kind: KindBinary, Binary: data}, nil, nil
}

func (binaryCodec) Write(v Value) string {
	return base64.StdEncoding.EncodeToString(v.Binary)
}

// uriCodec implements RFC 5545 §3.3.13.
type uriCodec struct{}

func (uriCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	u, err := url.Parse(raw)
	if err != nil {
		if mode == Strict {
			return Value{}, nil, icalerr.Wrap(icalerr.KindType, icalerr.CodeTypeURI, err, 0, raw)
		}
		return Value{Kind: KindURI, URI: raw}, []icalerr.Warning{{
			Code: icalerr.CodeTypeURI, Message: "URI did not parse cleanly, retained verbatim", Raw: raw,
		}}, nil
	}
	if u.Scheme == "" {
		if mode == Strict {
			return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypeURI,
				"URI has no scheme: "+raw, 0, raw)
		}
		return Value{Kind: KindURI, URI: raw}, []icalerr.Warning{{
			Code: icalerr.CodeTypeURI, Message: "URI without a scheme retained verbatim", Raw: raw,
		}}, nil
	}
	return Value{Kind: KindURI, URI: raw}, nil, nil
}

func (uriCodec) Write(v Value) string { return v.URI }

// calAddressCodec implements RFC 5545 §3.3.3: a URI, almost always
// mailto:. Strict mode requires a parseable mailto address body;
// lenient mode keeps whatever text arrived, with a warning.
type calAddressCodec struct{}

func (calAddressCodec) Parse(raw string, mode Mode) (Value, []icalerr.Warning, error) {
	if !strings.HasPrefix(strings.ToLower(raw), "mailto:") {
		if mode == Strict {
			return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypeCalAddr,
				"CAL-ADDRESS is not a mailto: URI: "+raw, 0, raw)
		}
		return Value{Kind: KindCalAddress, CalAddress: raw}, []icalerr.Warning{{
			Code: icalerr.CodeTypeCalAddr, Message: "CAL-ADDRESS without mailto: scheme retained verbatim", Raw: raw,
		}}, nil
	}
	body := raw[len("mailto:"):]
	if _, err := mail.ParseAddress(body); err != nil {
		if mode == Strict {
			return Value{}, nil, icalerr.Wrap(icalerr.KindType, icalerr.CodeTypeCalAddr, err, 0, raw)
		}
		return Value{Kind: KindCalAddress, CalAddress: raw}, []icalerr.Warning{{
			Code: icalerr.CodeTypeCalAddr, Message: "malformed mailto: body retained verbatim: " + err.Error(), Raw: raw,
		}}, nil
	}
	return Value{Kind: KindCalAddress, CalAddress: raw}, nil, nil
}

func (calAddressCodec) Write(v Value) string { return v.CalAddress }
