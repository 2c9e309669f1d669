package models

// Field names as printed by 7-Zip in "l -slt" output.
const (
	FieldPath            = "Path"
	FieldSize            = "Size"
	FieldPackedSize      = "Packed Size"
	FieldModified        = "Modified"
	FieldCreated         = "Created"
	FieldAttributes      = "Attributes"
	FieldCRC             = "CRC"
	FieldEncrypted       = "Encrypted"
	FieldMethod          = "Method"
	FieldBlock           = "Block"
	FieldComment         = "Comment"
	FieldHostOS          = "Host OS"
	FieldCharacteristics = "Characteristics"
	FieldFolder          = "Folder"

	FieldType         = "Type"
	FieldPhysicalSize = "Physical Size"
	FieldHeadersSize  = "Headers Size"
	FieldSolid        = "Solid"
	FieldBlocks       = "Blocks"
	FieldCodePage     = "Code Page"
)

type entrySetter func(e *Entry, value string)

// entryFields is the complete set of member fields that are decoded. Any
// other key is ignored.
var entryFields = map[string]entrySetter{
	FieldPath:            func(e *Entry, v string) { e.path = v },
	FieldSize:            func(e *Entry, v string) { e.size = v },
	FieldPackedSize:      func(e *Entry, v string) { e.packedSize = v },
	FieldModified:        func(e *Entry, v string) { e.modified = &v },
	FieldCreated:         func(e *Entry, v string) { e.created = &v },
	FieldAttributes:      func(e *Entry, v string) { e.attributes = &v },
	FieldCRC:             func(e *Entry, v string) { e.crc = &v },
	FieldEncrypted:       func(e *Entry, v string) { e.encrypted = &v },
	FieldMethod:          func(e *Entry, v string) { e.method = &v },
	FieldBlock:           func(e *Entry, v string) { e.block = &v },
	FieldComment:         func(e *Entry, v string) { e.comment = &v },
	FieldHostOS:          func(e *Entry, v string) { e.hostOS = &v },
	FieldCharacteristics: func(e *Entry, v string) { e.characteristics = &v },
	FieldFolder:          func(e *Entry, v string) { e.folder = &v },
}

type infoSetter func(i *Info, value string) error

var infoFields = map[string]infoSetter{
	FieldPath: func(i *Info, v string) error {
		i.path = v
		return nil
	},
	FieldType: func(i *Info, v string) error {
		i.typ = v
		return nil
	},
	FieldPhysicalSize: func(i *Info, v string) error {
		n, err := parseInt(FieldPhysicalSize, v)
		if err != nil {
			return err
		}
		i.physicalSize = &n
		return nil
	},
	FieldHeadersSize: func(i *Info, v string) (err error) {
		i.headersSize, err = optionalInt(FieldHeadersSize, v)
		return err
	},
	FieldMethod: func(i *Info, v string) error {
		i.method = &v
		return nil
	},
	FieldSolid: func(i *Info, v string) error {
		i.solid = &v
		return nil
	},
	FieldBlocks: func(i *Info, v string) (err error) {
		i.blocks, err = optionalInt(FieldBlocks, v)
		return err
	},
	FieldCodePage: func(i *Info, v string) error {
		i.codePage = &v
		return nil
	},
}
