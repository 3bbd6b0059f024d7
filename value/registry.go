package value

import (
	"strings"

	"github.com/wrenfield/icalgo/icalerr"
)

// Registry maps property names to their default Kind and each Kind to
// the Codec that implements it. Built once via NewRegistry and safe
// for concurrent reads thereafter: every codec is pre-populated at
// construction, never lazily added, so there is no race to guard
// against.
type Registry struct {
	defaults map[string]Kind
	codecs   map[Kind]Codec
}

// NewRegistry builds a Registry with every RFC 5545 default
// property->Kind mapping and a codec for all fourteen Kinds.
func NewRegistry() *Registry {
	r := &Registry{
		defaults: defaultPropertyKinds(),
		codecs: map[Kind]Codec{
			KindBinary:     binaryCodec{},
			KindBoolean:    booleanCodec{},
			KindCalAddress: calAddressCodec{},
			KindDate:       dateCodec{},
			KindDateTime:   dateTimeCodec{},
			KindDuration:   durationCodec{},
			KindFloat:      floatCodec{},
			KindInteger:    integerCodec{},
			KindPeriod:     periodCodec{},
			KindRecur:      recurCodec{},
			KindText:       textCodec{},
			KindTime:       timeCodec{},
			KindURI:        uriCodec{},
			KindUTCOffset:  utcOffsetCodec{},
		},
	}
	return r
}

// DefaultKind returns the Kind a bare property name implies absent a
// VALUE= override, and whether the name is recognized at all.
func (r *Registry) DefaultKind(propertyName string) (Kind, bool) {
	k, ok := r.defaults[strings.ToUpper(propertyName)]
	return k, ok
}

// Codec returns the codec registered for k.
func (r *Registry) Codec(k Kind) (Codec, bool) {
	c, ok := r.codecs[k]
	return c, ok
}

// kindByValueParam maps a VALUE= parameter's text to its Kind, used
// to override a property's default Kind.
func kindByValueParam(name string) (Kind, bool) {
	switch strings.ToUpper(name) {
	case "BINARY":
		return KindBinary, true
	case "BOOLEAN":
		return KindBoolean, true
	case "CAL-ADDRESS":
		return KindCalAddress, true
	case "DATE":
		return KindDate, true
	case "DATE-TIME":
		return KindDateTime, true
	case "DURATION":
		return KindDuration, true
	case "FLOAT":
		return KindFloat, true
	case "INTEGER":
		return KindInteger, true
	case "PERIOD":
		return KindPeriod, true
	case "RECUR":
		return KindRecur, true
	case "TEXT":
		return KindText, true
	case "TIME":
		return KindTime, true
	case "URI":
		return KindURI, true
	case "UTC-OFFSET":
		return KindUTCOffset, true
	default:
		return 0, false
	}
}

// Parse resolves the effective Kind for propertyName (valueParam, if
// non-empty, overrides the default) and parses raw with that Kind's
// codec.
func (r *Registry) Parse(propertyName, valueParam, raw string, mode Mode) (Value, []icalerr.Warning, error) {
	kind, ok := Kind(0), false
	if valueParam != "" {
		kind, ok = kindByValueParam(valueParam)
		if !ok {
			if mode == Strict {
				return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypeText,
					"unrecognized VALUE= parameter: "+valueParam, 0, raw)
			}
			kind, ok = KindText, true
		}
	} else {
		kind, ok = r.DefaultKind(propertyName)
		if !ok {
			kind, ok = KindText, true
		}
	}
	codec, ok := r.Codec(kind)
	if !ok {
		return Value{}, nil, icalerr.New(icalerr.KindType, icalerr.CodeTypeText,
			"no codec registered for kind "+kind.String(), 0, raw)
	}
	return codec.Parse(raw, mode)
}

// Write renders v back to its wire text using its own Kind's codec.
func (r *Registry) Write(v Value) (string, error) {
	codec, ok := r.Codec(v.Kind)
	if !ok {
		return "", icalerr.New(icalerr.KindType, icalerr.CodeTypeText,
			"no codec registered for kind "+v.Kind.String(), 0, "")
	}
	return codec.Write(v), nil
}

// defaultPropertyKinds is the property-name -> default Kind table,
// grounded on arran4-golang-ical's BaseProperty.GetValueType switch
// and RFC 5545 §3.8.
func defaultPropertyKinds() map[string]Kind {
	return map[string]Kind{
		"CALSCALE":       KindText,
		"METHOD":         KindText,
		"PRODID":         KindText,
		"VERSION":        KindText,
		"ATTACH":         KindURI,
		"CATEGORIES":     KindText,
		"CLASS":          KindText,
		"COMMENT":        KindText,
		"DESCRIPTION":    KindText,
		"GEO":            KindFloat,
		"LOCATION":       KindText,
		"PERCENT-COMPLETE": KindInteger,
		"PRIORITY":       KindInteger,
		"RESOURCES":      KindText,
		"STATUS":         KindText,
		"SUMMARY":        KindText,
		"COMPLETED":      KindDateTime,
		"DTEND":          KindDateTime,
		"DUE":            KindDateTime,
		"DTSTART":        KindDateTime,
		"DURATION":       KindDuration,
		"FREEBUSY":       KindPeriod,
		"TRANSP":         KindText,
		"TZID":           KindText,
		"TZNAME":         KindText,
		"TZOFFSETFROM":   KindUTCOffset,
		"TZOFFSETTO":     KindUTCOffset,
		"TZURL":          KindURI,
		"ATTENDEE":       KindCalAddress,
		"CONTACT":        KindText,
		"ORGANIZER":      KindCalAddress,
		"RECURRENCE-ID":  KindDateTime,
		"RELATED-TO":     KindText,
		"URL":            KindURI,
		"UID":            KindText,
		"EXDATE":         KindDateTime,
		"RDATE":          KindDateTime,
		"RRULE":          KindRecur,
		"ACTION":         KindText,
		"REPEAT":         KindInteger,
		"TRIGGER":        KindDuration,
		"CREATED":        KindDateTime,
		"DTSTAMP":        KindDateTime,
		"LAST-MODIFIED":  KindDateTime,
		"SEQUENCE":       KindInteger,
		"REQUEST-STATUS": KindText,
		"XML":            KindText,
		"STYLED-DESCRIPTION": KindText,
		"NAME":           KindText,
		"REFRESH-INTERVAL": KindDuration,
		"SOURCE":         KindURI,
		"COLOR":          KindText,
		"IMAGE":          KindURI,
		"CONFERENCE":     KindURI,
		"BUSYTYPE":       KindText,
	}
}
