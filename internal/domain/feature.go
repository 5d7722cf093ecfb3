package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

type FeatureName string

const (
	FeatureGetInsight          FeatureName = "get_insight"
	FeatureGetTip              FeatureName = "get_tip"
	FeatureSendEmail           FeatureName = "send_email"
	FeatureSendWhatsAppMessage FeatureName = "send_whatsapp_message"
	FeatureControlDevice       FeatureName = "control_device"
)

// FeatureCatalog is the closed set of capabilities nova knows how to
// synthesize.
var FeatureCatalog = []FeatureName{
	FeatureGetInsight,
	FeatureGetTip,
	FeatureSendEmail,
	FeatureSendWhatsAppMessage,
	FeatureControlDevice,
}

// BuiltinFeatures are picked from when an improvement request names nothing.
var BuiltinFeatures = []FeatureName{FeatureGetInsight, FeatureGetTip}

type topicRule struct {
	feature  FeatureName
	keywords []string
}

var topicRules = []topicRule{
	{feature: FeatureSendEmail, keywords: []string{"email"}},
	{feature: FeatureSendWhatsAppMessage, keywords: []string{"whatsapp"}},
	{feature: FeatureControlDevice, keywords: []string{"device", "control"}},
}

// TopicExamples returns one request phrase per synthesizable topic, made of
// the keywords of that topic.
func TopicExamples() []string {
	examples := make([]string, 0, len(topicRules))
	for _, rule := range topicRules {
		examples = append(examples, strings.Join(rule.keywords, " "))
	}
	return examples
}

// FeatureForTopic maps a request topic to a catalog feature by keyword
// containment, first rule wins.
func FeatureForTopic(topic string) (FeatureName, bool) {
	for _, rule := range topicRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(topic, keyword) {
				return rule.feature, true
			}
		}
	}
	return "", false
}

func (n FeatureName) InCatalog() bool {
	for _, known := range FeatureCatalog {
		if n == known {
			return true
		}
	}
	return false
}

var featureNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

type FeatureDescriptor struct {
	Name        FeatureName
	Topic       string
	Source      string
	Checksum    string
	InstalledAt time.Time
}

func (d FeatureDescriptor) Validate() error {
	if strings.TrimSpace(string(d.Name)) == "" {
		return fmt.Errorf("name is required")
	}
	if !featureNamePattern.MatchString(string(d.Name)) {
		return fmt.Errorf("name %q is not an identifier", d.Name)
	}
	if strings.TrimSpace(d.Source) == "" {
		return fmt.Errorf("source is required")
	}
	if d.Checksum != "" && d.Checksum != SourceChecksum(d.Source) {
		return fmt.Errorf("checksum does not match source of %q", d.Name)
	}

	return nil
}

func SourceChecksum(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}
