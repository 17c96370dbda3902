package cbor

// Tag constants for the subset of the IANA CBOR tags registry
// (https://www.iana.org/assignments/cbor-tags/cbor-tags.xhtml) this engine
// gives a name to. Unknown tags are preserved numerically by the tree codec
// and carry no special decode/encode semantics of their own — these names
// exist only for TagName. Neither the codecs nor Inspect call TagName;
// Inspect prints tags as numbers.
const (
	TagDateTimeString         uint64 = 0
	TagEpochBasedDateTime     uint64 = 1
	TagUnsignedBignum         uint64 = 2
	TagNegativeBignum         uint64 = 3
	TagDecimalFraction        uint64 = 4
	TagBigfloat               uint64 = 5
	TagCOSEEncrypt0           uint64 = 16
	TagCOSEMac0               uint64 = 17
	TagCOSESign1              uint64 = 18
	TagCOSECountersignature   uint64 = 19
	TagExpectConvToBase64URL  uint64 = 21
	TagExpectConvToBase64     uint64 = 22
	TagExpectConvToBase16     uint64 = 23
	TagEncodedCBORItem        uint64 = 24
	TagReferenceNthSeenString uint64 = 25
	TagSerializedPerlObject   uint64 = 26
	TagSerializedLangObject   uint64 = 27
	TagShared                 uint64 = 28
	TagReferenceNthMarked     uint64 = 29
	TagRationalNumber         uint64 = 30
	TagAbsentValueInArray     uint64 = 31
	TagURI                    uint64 = 32
	TagBase64URL              uint64 = 33
	TagBase64                 uint64 = 34
	TagRegularExpression      uint64 = 35
	TagMIMEMessage            uint64 = 36
	TagBinaryUUID             uint64 = 37
	TagLanguageTaggedString   uint64 = 38
	TagIdentifier             uint64 = 39
	TagMultiDimensionalArray  uint64 = 40
	TagHomogeneousArray       uint64 = 41
	TagIPLDContentIdentifier  uint64 = 42
	TagIEEEMACAddress         uint64 = 48
	TagIPv4                   uint64 = 52
	TagIPv6                   uint64 = 54
	TagCBORWebToken           uint64 = 61
	TagEncodedCBORSequence    uint64 = 63
	TagTypedArrayUint8        uint64 = 64
	TagTypedArrayUint16Big    uint64 = 65
	TagTypedArrayUint32Big    uint64 = 66
	TagTypedArrayUint64Big    uint64 = 67
	TagTypedArrayUint8Clamped uint64 = 68
	TagTypedArrayUint16Little uint64 = 69
	TagTypedArrayUint32Little uint64 = 70
	TagTypedArrayUint64Little uint64 = 71
	TagTypedArrayInt8         uint64 = 72
	TagTypedArrayInt16Big     uint64 = 73
	TagTypedArrayInt32Big     uint64 = 74
	TagTypedArrayInt64Big     uint64 = 75
	TagTypedArrayInt16Little  uint64 = 77
	TagTypedArrayInt32Little  uint64 = 78
	TagTypedArrayInt64Little  uint64 = 79
	TagTypedArrayFloat16Big   uint64 = 80
	TagTypedArrayFloat32Big   uint64 = 81
	TagTypedArrayFloat64Big   uint64 = 82
	TagTypedArrayFloat128Big  uint64 = 83

	// The four *_LITTLE float typed-array tags below duplicated the *_BIG
	// values (80-83) in the source registry snapshot this engine was built
	// from. They carry their own IANA-assigned values (RFC 8746): 84-87.
	TagTypedArrayFloat16Little uint64 = 84
	TagTypedArrayFloat32Little uint64 = 85
	TagTypedArrayFloat64Little uint64 = 86
	TagTypedArrayFloat128Little uint64 = 87

	TagEmbeddedJSONObject uint64 = 262
	TagHexadecimalString  uint64 = 263
	TagExtendedTime       uint64 = 1001
	TagDuration           uint64 = 1002
	TagPeriod             uint64 = 1003
	TagSHA256Digest       uint64 = 40001
)

// TagName returns a human-readable description of tag, or "Unassigned" for
// anything outside the subset named above. Nothing in this module calls it:
// the core decode/encode path and Inspect leave tags numeric.
func TagName(tag uint64) string {
	switch tag {
	case TagDateTimeString:
		return "Date-Time String"
	case TagEpochBasedDateTime:
		return "Epoch-based Date-Time"
	case TagUnsignedBignum:
		return "Unsigned Bignum"
	case TagNegativeBignum:
		return "Negative Bignum"
	case TagDecimalFraction:
		return "Decimal Fraction"
	case TagBigfloat:
		return "Bigfloat"
	case TagCOSEEncrypt0:
		return "COSE_Encrypt0"
	case TagCOSEMac0:
		return "COSE_Mac0"
	case TagCOSESign1:
		return "COSE_Sign1"
	case TagCOSECountersignature:
		return "COSE_Countersignature"
	case TagExpectConvToBase64URL:
		return "Expected Conversion to Base64 URL"
	case TagExpectConvToBase64:
		return "Expected Conversion to Base64"
	case TagExpectConvToBase16:
		return "Expected Conversion to Base16"
	case TagEncodedCBORItem:
		return "Encoded CBOR Item"
	case TagReferenceNthSeenString:
		return "Reference the Nth Previously Seen String"
	case TagSerializedPerlObject:
		return "Serialized Perl Object"
	case TagSerializedLangObject:
		return "Serialized Language-Independent Object"
	case TagShared:
		return "(Potentially) Shared"
	case TagReferenceNthMarked:
		return "Reference Nth Marked Value"
	case TagRationalNumber:
		return "Rational Number"
	case TagAbsentValueInArray:
		return "Absent Value in CBOR Array"
	case TagURI:
		return "URI"
	case TagBase64URL:
		return "Base64 URL"
	case TagBase64:
		return "Base64"
	case TagRegularExpression:
		return "Regular Expression"
	case TagMIMEMessage:
		return "MIME Message"
	case TagBinaryUUID:
		return "Binary UUID"
	case TagLanguageTaggedString:
		return "Language-Tagged String"
	case TagIdentifier:
		return "Identifier"
	case TagMultiDimensionalArray:
		return "Multi-Dimensional Array"
	case TagHomogeneousArray:
		return "Homogeneous Array"
	case TagIPLDContentIdentifier:
		return "IPLD Content Identifier"
	case TagIEEEMACAddress:
		return "IEEE MAC Address"
	case TagIPv4:
		return "IPv4"
	case TagIPv6:
		return "IPv6"
	case TagCBORWebToken:
		return "CBOR Web Token"
	case TagEncodedCBORSequence:
		return "Encoded CBOR Sequence"
	case TagTypedArrayUint8:
		return "Typed Array (uint8)"
	case TagTypedArrayUint16Big:
		return "Typed Array (uint16, big-endian)"
	case TagTypedArrayUint32Big:
		return "Typed Array (uint32, big-endian)"
	case TagTypedArrayUint64Big:
		return "Typed Array (uint64, big-endian)"
	case TagTypedArrayUint8Clamped:
		return "Typed Array (uint8, clamped)"
	case TagTypedArrayUint16Little:
		return "Typed Array (uint16, little-endian)"
	case TagTypedArrayUint32Little:
		return "Typed Array (uint32, little-endian)"
	case TagTypedArrayUint64Little:
		return "Typed Array (uint64, little-endian)"
	case TagTypedArrayInt8:
		return "Typed Array (int8)"
	case TagTypedArrayInt16Big:
		return "Typed Array (int16, big-endian)"
	case TagTypedArrayInt32Big:
		return "Typed Array (int32, big-endian)"
	case TagTypedArrayInt64Big:
		return "Typed Array (int64, big-endian)"
	case TagTypedArrayInt16Little:
		return "Typed Array (int16, little-endian)"
	case TagTypedArrayInt32Little:
		return "Typed Array (int32, little-endian)"
	case TagTypedArrayInt64Little:
		return "Typed Array (int64, little-endian)"
	case TagTypedArrayFloat16Big:
		return "Typed Array (float16, big-endian)"
	case TagTypedArrayFloat32Big:
		return "Typed Array (float32, big-endian)"
	case TagTypedArrayFloat64Big:
		return "Typed Array (float64, big-endian)"
	case TagTypedArrayFloat128Big:
		return "Typed Array (float128, big-endian)"
	case TagTypedArrayFloat16Little:
		return "Typed Array (float16, little-endian)"
	case TagTypedArrayFloat32Little:
		return "Typed Array (float32, little-endian)"
	case TagTypedArrayFloat64Little:
		return "Typed Array (float64, little-endian)"
	case TagTypedArrayFloat128Little:
		return "Typed Array (float128, little-endian)"
	case TagEmbeddedJSONObject:
		return "Embedded JSON Object"
	case TagHexadecimalString:
		return "Hexadecimal String"
	case TagExtendedTime:
		return "Extended Time"
	case TagDuration:
		return "Duration"
	case TagPeriod:
		return "Period"
	case TagSHA256Digest:
		return "SHA-256 Digest"
	default:
		return "Unassigned"
	}
}
