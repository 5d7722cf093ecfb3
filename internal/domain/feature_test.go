package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureForTopic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		topic  string
		want   FeatureName
		wantOK bool
	}{
		{topic: "code email", want: FeatureSendEmail, wantOK: true},
		{topic: "whatsapp messages", want: FeatureSendWhatsAppMessage, wantOK: true},
		{topic: "device control", want: FeatureControlDevice, wantOK: true},
		{topic: "control the lights", want: FeatureControlDevice, wantOK: true},
		{topic: "email my whatsapp group", want: FeatureSendEmail, wantOK: true},
		{topic: "poetry", wantOK: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.topic, func(t *testing.T) {
			t.Parallel()
			got, ok := FeatureForTopic(tc.topic)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTopicExamplesResolveToTheirFeature(t *testing.T) {
	t.Parallel()

	examples := TopicExamples()
	assert.Equal(t, []string{"email", "whatsapp", "device control"}, examples)
	for _, example := range examples {
		_, ok := FeatureForTopic(example)
		assert.True(t, ok, example)
	}
}

func TestFeatureDescriptorValidate(t *testing.T) {
	t.Parallel()

	source := "package main\n"
	tests := []struct {
		name    string
		desc    FeatureDescriptor
		wantErr string
	}{
		{name: "valid", desc: FeatureDescriptor{Name: FeatureSendEmail, Source: source, Checksum: SourceChecksum(source)}},
		{name: "missing name", desc: FeatureDescriptor{Source: source}, wantErr: "name is required"},
		{name: "not an identifier", desc: FeatureDescriptor{Name: "Send Email", Source: source}, wantErr: "not an identifier"},
		{name: "missing source", desc: FeatureDescriptor{Name: FeatureGetTip}, wantErr: "source is required"},
		{name: "checksum mismatch", desc: FeatureDescriptor{Name: FeatureGetTip, Source: source, Checksum: "abc"}, wantErr: "checksum does not match"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.desc.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestFeatureCatalogMembership(t *testing.T) {
	t.Parallel()

	assert.True(t, FeatureControlDevice.InCatalog())
	assert.False(t, FeatureName("launch_rocket").InCatalog())
}

func TestSiteURL(t *testing.T) {
	t.Parallel()

	url, ok := SiteURL("youtube")
	assert.True(t, ok)
	assert.Equal(t, "https://www.youtube.com/", url)

	_, ok = SiteURL("myspace")
	assert.False(t, ok)
	assert.Equal(t, []string{"chrome", "facebook", "google", "instagram", "whatsapp", "youtube"}, KnownSites())
}
