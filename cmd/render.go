package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"archive-listing/internal/config"
	"archive-listing/internal/models"
	"archive-listing/internal/utils"
)

type entryView struct {
	Path            string  `json:"path"`
	UnixPath        string  `json:"unixPath"`
	Size            string  `json:"size"`
	PackedSize      string  `json:"packedSize"`
	IsDirectory     bool    `json:"isDirectory"`
	IsEncrypted     bool    `json:"isEncrypted"`
	Modified        *string `json:"modified,omitempty"`
	Created         *string `json:"created,omitempty"`
	Attributes      *string `json:"attributes,omitempty"`
	CRC             *string `json:"crc,omitempty"`
	Method          *string `json:"method,omitempty"`
	Block           *string `json:"block,omitempty"`
	Comment         *string `json:"comment,omitempty"`
	HostOS          *string `json:"hostOs,omitempty"`
	Characteristics *string `json:"characteristics,omitempty"`
}

type infoView struct {
	Path         string  `json:"path"`
	Type         string  `json:"type"`
	PhysicalSize int64   `json:"physicalSize"`
	HeadersSize  *int64  `json:"headersSize,omitempty"`
	Method       *string `json:"method,omitempty"`
	Solid        bool    `json:"solid"`
	Blocks       *int64  `json:"blocks,omitempty"`
	CodePage     *string `json:"codePage,omitempty"`
	Tool         string  `json:"tool,omitempty"`
}

func opt(get func() (string, bool)) *string {
	if v, ok := get(); ok {
		return &v
	}
	return nil
}

func optInt(get func() (int64, bool)) *int64 {
	if v, ok := get(); ok {
		return &v
	}
	return nil
}

func newEntryView(e *models.Entry) entryView {
	return entryView{
		Path:            e.Path(),
		UnixPath:        e.UnixPath(),
		Size:            e.Size(),
		PackedSize:      e.PackedSize(),
		IsDirectory:     e.IsDirectory(),
		IsEncrypted:     e.IsEncrypted(),
		Modified:        opt(e.Modified),
		Created:         opt(e.Created),
		Attributes:      opt(e.Attributes),
		CRC:             opt(e.CRC),
		Method:          opt(e.Method),
		Block:           opt(e.Block),
		Comment:         opt(e.Comment),
		HostOS:          opt(e.HostOS),
		Characteristics: opt(e.Characteristics),
	}
}

func newInfoView(i *models.Info, tool string) infoView {
	return infoView{
		Path:         i.Path(),
		Type:         i.Type(),
		PhysicalSize: i.PhysicalSize(),
		HeadersSize:  optInt(i.HeadersSize),
		Method:       opt(i.Method),
		Solid:        i.IsSolid(),
		Blocks:       optInt(i.Blocks),
		CodePage:     opt(i.CodePage),
		Tool:         tool,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func renderEntries(w io.Writer, format string, entries []*models.Entry) error {
	if format == config.FormatJSON {
		views := make([]entryView, 0, len(entries))
		for _, e := range entries {
			views = append(views, newEntryView(e))
		}
		return writeJSON(w, views)
	}

	data := pterm.TableData{{"Path", "Size", "Packed", "Modified", "Attributes", "Method"}}
	for _, e := range entries {
		modified, _ := e.Modified()
		attrs, _ := e.Attributes()
		method, _ := e.Method()
		path := e.UnixPath()
		if e.IsDirectory() {
			path += "/"
		}
		data = append(data, []string{
			path, utils.HumanSize(e.Size()), utils.HumanSize(e.PackedSize()), modified, attrs, method,
		})
	}
	return writeTable(w, data)
}

func renderInfo(w io.Writer, format string, info *models.Info, tool string) error {
	v := newInfoView(info, tool)
	if format == config.FormatJSON {
		return writeJSON(w, v)
	}

	data := pterm.TableData{
		{"Field", "Value"},
		{"Path", v.Path},
		{"Type", v.Type},
		{"Physical Size", strconv.FormatInt(v.PhysicalSize, 10)},
	}
	if v.HeadersSize != nil {
		data = append(data, []string{"Headers Size", strconv.FormatInt(*v.HeadersSize, 10)})
	}
	if v.Method != nil {
		data = append(data, []string{"Method", *v.Method})
	}
	data = append(data, []string{"Solid", strconv.FormatBool(v.Solid)})
	if v.Blocks != nil {
		data = append(data, []string{"Blocks", strconv.FormatInt(*v.Blocks, 10)})
	}
	if v.CodePage != nil {
		data = append(data, []string{"Code Page", *v.CodePage})
	}
	if tool != "" {
		data = append(data, []string{"Tool", tool})
	}
	return writeTable(w, data)
}
