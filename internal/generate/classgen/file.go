package classgen

import (
	"bytes"
	"fmt"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/jptrs93/protoclass/internal/generate"
	"github.com/jptrs93/protoclass/internal/ir"
)

// fileCode is everything generated for one schema file before it is laid out.
type fileCode struct {
	enums      []string
	classes    []classCode
	extensions []string
	extVars    []string
}

type goFileData struct {
	Source  string
	Doc     string
	Package string
	Blocks  []string
}

func (r *run) generateFile(file *ir.File, pkg, base string, options generate.Options) ([]generate.OutputFile, error) {
	code, err := r.collect(file)
	if err != nil {
		return nil, err
	}
	doc := fmt.Sprintf("Package %s holds the message classes generated from %s.", pkg, file.Path)
	var aggregate []string
	aggregate = append(aggregate, code.extensions...)
	if len(code.extVars) > 0 {
		aggregate = append(aggregate, extensionRegistration(base, code.extVars))
	}
	var source []string
	for _, c := range code.classes {
		source = append(source, c.source...)
	}

	type artifact struct {
		name, file, doc string
		blocks          []string
	}
	var artifacts []artifact
	if options.SplitHeaders {
		artifacts = append(artifacts,
			artifact{name: generate.ArtifactAggregate, file: base + ".pc.go", doc: doc, blocks: aggregate},
			artifact{name: generate.ArtifactEnums, file: base + ".enums.pc.go", blocks: code.enums},
		)
		for _, c := range code.classes {
			artifacts = append(artifacts, artifact{
				name:   generate.ArtifactClassPrefix + c.name,
				file:   base + "." + c.name + ".pc.go",
				blocks: c.header,
			})
		}
	} else {
		header := append([]string(nil), code.enums...)
		for _, c := range code.classes {
			header = append(header, c.header...)
		}
		header = append(header, aggregate...)
		artifacts = append(artifacts, artifact{name: generate.ArtifactHeader, file: base + ".pc.go", doc: doc, blocks: header})
	}
	artifacts = append(artifacts, artifact{name: generate.ArtifactSource, file: base + ".pc.impl.go", blocks: source})

	outputs := make([]generate.OutputFile, 0, len(artifacts))
	for _, a := range artifacts {
		content, err := r.render(a.file, goFileData{Source: file.Path, Doc: a.doc, Package: pkg, Blocks: a.blocks})
		if err != nil {
			return nil, fmt.Errorf("artifact %s: %w", a.name, err)
		}
		r.logger.Debug("rendered artifact", "artifact", a.name, "file", a.file, "bytes", len(content))
		outputs = append(outputs, generate.OutputFile{
			Name:    a.name,
			Path:    filepath.Join(options.OutDir, a.file),
			Content: content,
		})
	}
	return outputs, nil
}

// collect generates enums, classes and extension descriptors in declaration order.
func (r *run) collect(file *ir.File) (fileCode, error) {
	var code fileCode
	for i := range file.Enums {
		enum, err := r.generateEnum(&file.Enums[i])
		if err != nil {
			return fileCode{}, err
		}
		code.enums = append(code.enums, enum)
	}
	for i := range file.Extensions {
		if err := r.addExtension(&code, scopedExtension{field: file.Extensions[i], scopeName: file.Package}); err != nil {
			return fileCode{}, err
		}
	}
	for i := range file.Messages {
		if err := r.collectMessage(&code, &file.Messages[i]); err != nil {
			return fileCode{}, err
		}
	}
	return code, nil
}

func (r *run) collectMessage(code *fileCode, msg *ir.Message) error {
	plan, err := r.planMessage(msg)
	if err != nil {
		return err
	}
	r.logger.Debug("planned message", "message", msg.FullName, "order", plan.order())
	code.classes = append(code.classes, plan.generate())

	for i := range msg.Enums {
		enum, err := r.generateEnum(&msg.Enums[i])
		if err != nil {
			return err
		}
		code.enums = append(code.enums, enum)
	}
	for i := range msg.Extensions {
		ext := scopedExtension{field: msg.Extensions[i], scope: plan.class, scopeName: msg.FullName}
		if err := r.addExtension(code, ext); err != nil {
			return err
		}
	}
	for i := range msg.Messages {
		if err := r.collectMessage(code, &msg.Messages[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) addExtension(code *fileCode, ext scopedExtension) error {
	name, desc, err := r.extensionDesc(ext)
	if err != nil {
		return err
	}
	code.extVars = append(code.extVars, name)
	code.extensions = append(code.extensions, desc)
	return nil
}

// render executes the file template and formats the result, dropping unused imports.
func (r *run) render(name string, data goFileData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	out, err := imports.Process(name, buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8})
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return out, nil
}
