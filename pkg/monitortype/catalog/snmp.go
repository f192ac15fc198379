/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/gosnmp/gosnmp"

	"github.com/simplewatch/simplewatch/pkg/monitortype"
)

var (
	errSNMPThresholdOrderGreater = errors.New("warning threshold must be below critical threshold for greater comparison")
	errSNMPThresholdOrderLess    = errors.New("warning threshold must be above critical threshold for less comparison")

	validOID = regexp.MustCompile(`^\.?\d+(\.\d+)+$`)
)

// snmpVersions maps config values onto gosnmp version identifiers.
// Validation accepts exactly the versions the probe side can speak.
var snmpVersions = map[string]gosnmp.SnmpVersion{
	"v1":  gosnmp.Version1,
	"v2c": gosnmp.Version2c,
	"v3":  gosnmp.Version3,
}

var snmpAuthProtocols = map[string]gosnmp.SnmpV3AuthProtocol{
	"MD5": gosnmp.MD5,
	"SHA": gosnmp.SHA,
}

var snmpPrivProtocols = map[string]gosnmp.SnmpV3PrivProtocol{
	"DES": gosnmp.DES,
	"AES": gosnmp.AES,
}

// OIDPreset is one entry of the common-OID quick reference rendered
// next to the OID field.
type OIDPreset struct {
	Name string
	OID  string
}

// CommonOIDs drive the preset selector wired by OnRendered.
var CommonOIDs = []OIDPreset{
	{Name: "sysUptime", OID: "1.3.6.1.2.1.1.3.0"},
	{Name: "sysDescr", OID: "1.3.6.1.2.1.1.1.0"},
	{Name: "sysName", OID: "1.3.6.1.2.1.1.5.0"},
	{Name: "sysContact", OID: "1.3.6.1.2.1.1.4.0"},
	{Name: "sysLocation", OID: "1.3.6.1.2.1.1.6.0"},
	{Name: "ifNumber", OID: "1.3.6.1.2.1.2.1.0"},
}

// presetKey is the UI-only binding the preset selector writes to. It
// is deliberately not part of the schema so it never reaches the
// persisted config.
const presetKey = "oid_preset"

type snmpDescriptor struct {
	monitortype.Base
}

func newSNMP() *snmpDescriptor {
	v3Only := &monitortype.Visibility{Field: "version", Values: []string{"v3"}}
	communityVersions := &monitortype.Visibility{Field: "version", Values: []string{"v1", "v2c"}}
	numericOnly := &monitortype.Visibility{Field: "value_type", Values: []string{"numeric"}}

	return &snmpDescriptor{
		Base: monitortype.Base{
			ID:        "snmp",
			Name:      "SNMP Query",
			Desc:      "Queries an OID on an SNMP-enabled device and evaluates the value",
			IconName:  "router",
			Group:     monitortype.CategoryInfrastructure,
			Interval:  5,
			Intervals: defaultIntervals,
			Fields: []monitortype.FieldSpec{
				{
					Key:         "host",
					Kind:        monitortype.FieldText,
					Label:       "Host",
					Placeholder: "switch-1.example.com",
					Required:    true,
				},
				{
					Key:     "port",
					Kind:    monitortype.FieldNumber,
					Label:   "Port",
					Default: 161,
					Min:     monitortype.Num(minPort),
					Max:     monitortype.Num(maxPort),
				},
				{
					Key:     "version",
					Kind:    monitortype.FieldSelect,
					Label:   "SNMP version",
					Default: "v2c",
					Options: []monitortype.Option{
						{Value: "v1", Label: "v1"},
						{Value: "v2c", Label: "v2c"},
						{Value: "v3", Label: "v3"},
					},
				},
				{
					Key:         "community",
					Kind:        monitortype.FieldPassword,
					Label:       "Community string",
					Default:     "public",
					VisibleWhen: communityVersions,
				},
				{
					Key:         "username",
					Kind:        monitortype.FieldText,
					Label:       "Username",
					VisibleWhen: v3Only,
				},
				{
					Key:         "auth_password",
					Kind:        monitortype.FieldPassword,
					Label:       "Auth password",
					VisibleWhen: v3Only,
				},
				{
					Key:         "priv_password",
					Kind:        monitortype.FieldPassword,
					Label:       "Privacy password",
					VisibleWhen: v3Only,
				},
				{
					Key:     "auth_protocol",
					Kind:    monitortype.FieldSelect,
					Label:   "Auth protocol",
					Default: "SHA",
					Options: []monitortype.Option{
						{Value: "MD5", Label: "MD5"},
						{Value: "SHA", Label: "SHA"},
					},
					VisibleWhen: v3Only,
				},
				{
					Key:     "priv_protocol",
					Kind:    monitortype.FieldSelect,
					Label:   "Privacy protocol",
					Default: "AES",
					Options: []monitortype.Option{
						{Value: "DES", Label: "DES"},
						{Value: "AES", Label: "AES"},
					},
					VisibleWhen: v3Only,
				},
				{
					Key:         "oid",
					Kind:        monitortype.FieldText,
					Label:       "OID",
					Placeholder: "1.3.6.1.2.1.1.3.0",
					Required:    true,
					Hint:        "Object identifier to query",
				},
				{
					Key:     "value_type",
					Kind:    monitortype.FieldSelect,
					Label:   "Value type",
					Default: "presence",
					Options: []monitortype.Option{
						{Value: "presence", Label: "Presence"},
						{Value: "numeric", Label: "Numeric"},
						{Value: "string", Label: "String"},
					},
				},
				{
					Key:   "comparison",
					Kind:  monitortype.FieldSelect,
					Label: "Comparison",
					Options: []monitortype.Option{
						{Value: "equal", Label: "Equal"},
						{Value: "not_equal", Label: "Not equal"},
						{Value: "greater", Label: "Greater"},
						{Value: "less", Label: "Less"},
						{Value: "contains", Label: "Contains"},
					},
				},
				{
					Key:   "expected_value",
					Kind:  monitortype.FieldText,
					Label: "Expected value",
				},
				{
					Key:         "warning_threshold",
					Kind:        monitortype.FieldNumber,
					Label:       "Warning threshold",
					VisibleWhen: numericOnly,
				},
				{
					Key:         "critical_threshold",
					Kind:        monitortype.FieldNumber,
					Label:       "Critical threshold",
					VisibleWhen: numericOnly,
				},
				{
					Key:     "timeout",
					Kind:    monitortype.FieldNumber,
					Label:   "Timeout (seconds)",
					Default: 5,
					Min:     monitortype.Num(1),
					Max:     monitortype.Num(60),
				},
			},
		},
	}
}

func (*snmpDescriptor) Validate(cfg monitortype.Config) error {
	if err := requireHost(cfg, "host", "Host"); err != nil {
		return err
	}

	if err := optionalNumber(cfg, "port", "Port", minPort, maxPort); err != nil {
		return err
	}

	version := cfg.String("version")
	if version == "" {
		version = "v2c"
	}

	if _, ok := snmpVersions[version]; !ok {
		return fmt.Errorf("SNMP version must be one of: v1, v2c, v3, got %q", version)
	}

	if version == "v3" {
		if _, err := requireString(cfg, "username", "Username"); err != nil {
			return err
		}

		if proto := cfg.String("auth_protocol"); proto != "" {
			if _, ok := snmpAuthProtocols[proto]; !ok {
				return fmt.Errorf("Auth protocol must be MD5 or SHA, got %q", proto)
			}
		}

		if proto := cfg.String("priv_protocol"); proto != "" {
			if _, ok := snmpPrivProtocols[proto]; !ok {
				return fmt.Errorf("Privacy protocol must be DES or AES, got %q", proto)
			}
		}
	} else if _, err := requireString(cfg, "community", "Community string"); err != nil {
		return err
	}

	oid, err := requireString(cfg, "oid", "OID")
	if err != nil {
		return err
	}

	if !validOID.MatchString(oid) {
		return fmt.Errorf("OID must be a dotted numeric identifier, got %q", oid)
	}

	if err := requireOneOf(cfg, "value_type", "Value type", "presence", "numeric", "string"); err != nil {
		return err
	}

	if err := requireOneOf(cfg, "comparison", "Comparison", "equal", "not_equal", "greater", "less", "contains"); err != nil {
		return err
	}

	warning, hasWarning := cfg.Number("warning_threshold")
	critical, hasCritical := cfg.Number("critical_threshold")

	if hasWarning && hasCritical {
		switch cfg.String("comparison") {
		case "greater":
			if warning >= critical {
				return errSNMPThresholdOrderGreater
			}
		case "less":
			if warning <= critical {
				return errSNMPThresholdOrderLess
			}
		}
	}

	return optionalNumber(cfg, "timeout", "Timeout", 1, 60)
}

// ConnectionSettings translates a validated snmp monitor config into
// the dialing parameters a prober hands to gosnmp. Missing fields fall
// back to the schema defaults: v2c on port 161, five second timeout.
func ConnectionSettings(cfg monitortype.Config) *gosnmp.GoSNMP {
	g := &gosnmp.GoSNMP{
		Target:  cfg.String("host"),
		Port:    161,
		Version: gosnmp.Version2c,
		Timeout: 5 * time.Second,
		Retries: 1,
	}

	if port, ok := cfg.Number("port"); ok {
		g.Port = uint16(port)
	}

	if timeout, ok := cfg.Number("timeout"); ok {
		g.Timeout = time.Duration(timeout) * time.Second
	}

	if v, ok := snmpVersions[cfg.String("version")]; ok {
		g.Version = v
	}

	if g.Version != gosnmp.Version3 {
		g.Community = cfg.String("community")
		return g
	}

	authProto := cfg.String("auth_protocol")
	if authProto == "" {
		authProto = "SHA"
	}

	privProto := cfg.String("priv_protocol")
	if privProto == "" {
		privProto = "AES"
	}

	usm := &gosnmp.UsmSecurityParameters{UserName: cfg.String("username")}
	g.SecurityModel = gosnmp.UserSecurityModel
	g.MsgFlags = gosnmp.NoAuthNoPriv

	if pass := cfg.String("auth_password"); pass != "" {
		usm.AuthenticationProtocol = snmpAuthProtocols[authProto]
		usm.AuthenticationPassphrase = pass
		g.MsgFlags = gosnmp.AuthNoPriv

		if priv := cfg.String("priv_password"); priv != "" {
			usm.PrivacyProtocol = snmpPrivProtocols[privProto]
			usm.PrivacyPassphrase = priv
			g.MsgFlags = gosnmp.AuthPriv
		}
	}

	g.SecurityParameters = usm

	return g
}

// OnRendered wires the common-OID preset selector: choosing a preset
// fills the OID field. Invoking it again with the same prefix only
// rewrites the same value, so re-rendering is safe.
func (*snmpDescriptor) OnRendered(form monitortype.FormWriter, prefix string) {
	preset, ok := form.Get(monitortype.BindingKey(prefix, presetKey))
	if !ok || preset == "" || preset == "custom" {
		return
	}

	for _, p := range CommonOIDs {
		if p.Name == preset {
			form.Set(monitortype.BindingKey(prefix, "oid"), p.OID)
			return
		}
	}
}
