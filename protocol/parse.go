package protocol

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ParseConnectionString parses a connection string of the form
//
//	scheme://[user:pass@]host[:port][,host[:port]]*[/][?key=value[&...]]
//
// where scheme is one of esdb, esdb+discover, kurrentdb, or
// kurrentdb+discover. The +discover schemes enable DNS discovery of seed
// nodes. Query keys are matched case-insensitively; unknown keys are
// structured errors naming the key.
func ParseConnectionString(s string) (ClientSettings, error) {
	var settings = DefaultSettings()

	var rest string
	switch {
	case strings.HasPrefix(s, "esdb://"):
		rest = s[len("esdb://"):]
	case strings.HasPrefix(s, "esdb+discover://"):
		settings.DNSDiscover = true
		rest = s[len("esdb+discover://"):]
	case strings.HasPrefix(s, "kurrentdb://"):
		rest = s[len("kurrentdb://"):]
	case strings.HasPrefix(s, "kurrentdb+discover://"):
		settings.DNSDiscover = true
		rest = s[len("kurrentdb+discover://"):]
	default:
		return ClientSettings{}, newConnStringError(
			"invalid scheme (%s; expected esdb[+discover] or kurrentdb[+discover])", s)
	}

	// Split off the query, then a trailing "/", then user info.
	var query string
	if i := strings.IndexByte(rest, '?'); i != -1 {
		rest, query = rest[:i], rest[i+1:]
	}
	rest = strings.TrimSuffix(rest, "/")

	if i := strings.LastIndexByte(rest, '@'); i != -1 {
		var userinfo = rest[:i]
		rest = rest[i+1:]

		var j = strings.IndexByte(userinfo, ':')
		if j == -1 {
			return ClientSettings{}, newConnStringError(
				"invalid user info (%s; expected user:pass)", userinfo)
		}
		var user, errU = url.QueryUnescape(userinfo[:j])
		var pass, errP = url.QueryUnescape(userinfo[j+1:])
		if errU != nil || errP != nil || user == "" {
			return ClientSettings{}, newConnStringError("invalid user info (%s)", userinfo)
		}
		settings.DefaultCredentials = &Credentials{Username: user, Password: pass}
	}

	if rest == "" {
		return ClientSettings{}, newConnStringError("expected at least one host")
	}
	for _, authority := range strings.Split(rest, ",") {
		var ep, err = ParseEndpoint(authority)
		if err != nil {
			return ClientSettings{}, newConnStringError("invalid host %q: %s", authority, err)
		}
		settings.Hosts = append(settings.Hosts, ep)
	}

	if query != "" {
		if err := parseQuery(&settings, query); err != nil {
			return ClientSettings{}, err
		}
	}

	if err := settings.Validate(); err != nil {
		return ClientSettings{}, newConnStringError("%s", err)
	}
	return settings, nil
}

func parseQuery(settings *ClientSettings, query string) error {
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		var key, value string
		if i := strings.IndexByte(pair, '='); i != -1 {
			key, value = pair[:i], pair[i+1:]
		} else {
			key = pair
		}

		var err error
		switch strings.ToLower(key) {
		case "tls":
			settings.TLS, err = parseBool(value)
		case "tlsverifycert":
			settings.TLSVerifyCert, err = parseBool(value)
		case "tlscafile":
			settings.TLSCAFile, err = url.QueryUnescape(value)
		case "nodepreference":
			settings.NodePreference, err = ParseNodePreference(value)
		case "maxdiscoverattempts":
			settings.MaxDiscoverAttempts, err = parseUint32(value)
		case "discoveryinterval":
			settings.DiscoveryInterval, err = parseMillis(value)
		case "gossiptimeout":
			settings.GossipTimeout, err = parseMillis(value)
		case "keepaliveinterval":
			settings.KeepAliveInterval, err = parseMillis(value)
		case "keepalivetimeout":
			settings.KeepAliveTimeout, err = parseMillis(value)
		case "defaultdeadline":
			settings.DefaultDeadline, err = parseMillis(value)
		case "throwonappendfailure":
			settings.ThrowOnAppendFailure, err = parseBool(value)
		case "connectionname":
			settings.ConnectionName, err = url.QueryUnescape(value)
		default:
			return newConnStringKeyError(key, "unknown setting")
		}

		if err != nil {
			return newConnStringKeyError(key, "%s", err)
		}
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, NewValidationError("invalid value %q (expected true or false)", s)
	}
}

func parseUint32(s string) (uint32, error) {
	var v, err = strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, NewValidationError("invalid value %q (expected unsigned integer)", s)
	}
	return uint32(v), nil
}

func parseMillis(s string) (time.Duration, error) {
	var v, err = strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, NewValidationError("invalid value %q (expected milliseconds)", s)
	}
	return time.Duration(v) * time.Millisecond, nil
}
