package cmd_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samwightt/gqlscaffold/cmd"
	"github.com/samwightt/gqlscaffold/internal/typeexpr"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestType_WritesFile(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := cmd.ExecuteWithArgs([]string{"type", "BlogPost", "title:String!", "comments:[Comment]", "views:Int", "-d", dir, "-f", "text"})
	require.NoError(t, err)

	path := filepath.Join(dir, "types", "blog_post_type.rb")
	assert.Contains(t, stdout, "create")
	assert.Contains(t, stdout, path)

	want := `# frozen_string_literal: true

module Types
  class BlogPostType < Types::BaseObject
    field :title, String, null: false
    field :comments, [Types::CommentType], null: true
    field :views, Integer, null: true
  end
end
`
	assert.Equal(t, want, readFile(t, path))
}

func TestType_ObjectAlias(t *testing.T) {
	dir := t.TempDir()

	_, _, err := cmd.ExecuteWithArgs([]string{"object", "types.comment", "-d", dir})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "types", "comment_type.rb"))
}

func TestType_NodeAndSDL(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := cmd.ExecuteWithArgs([]string{"type", "Post", "id:ID!", "--node", "--sdl", "-d", dir, "-f", "text"})
	require.NoError(t, err)

	assert.Contains(t, readFile(t, filepath.Join(dir, "types", "post_type.rb")), "implements GraphQL::Types::Relay::Node")
	assert.Equal(t, "type Post implements Node {\n  id: ID!\n}\n", readFile(t, filepath.Join(dir, "types", "post_type.graphql")))
	assert.Contains(t, stdout, "post_type.graphql")
}

func TestType_Identical(t *testing.T) {
	dir := t.TempDir()
	args := []string{"type", "Post", "title:String", "-d", dir, "-f", "text"}

	_, _, err := cmd.ExecuteWithArgs(args)
	require.NoError(t, err)

	stdout, _, err := cmd.ExecuteWithArgs(args)
	require.NoError(t, err)
	assert.Contains(t, stdout, "identical")
}

func TestType_Conflict(t *testing.T) {
	dir := t.TempDir()

	_, _, err := cmd.ExecuteWithArgs([]string{"type", "Post", "title:String", "-d", dir})
	require.NoError(t, err)

	stdout, stderr, err := cmd.ExecuteWithArgs([]string{"type", "Post", "title:String!", "-d", dir, "-f", "text"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, cmd.ErrConflict))
	assert.Contains(t, stdout, "conflict")
	assert.Contains(t, stdout, "null: false")
	assert.Contains(t, stderr, "--force")

	assert.Contains(t, readFile(t, filepath.Join(dir, "types", "post_type.rb")), "null: true")
}

func TestType_Force(t *testing.T) {
	dir := t.TempDir()

	_, _, err := cmd.ExecuteWithArgs([]string{"type", "Post", "title:String", "-d", dir})
	require.NoError(t, err)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"type", "Post", "title:String!", "-d", dir, "--force", "-f", "text"})
	require.NoError(t, err)
	assert.Contains(t, stdout, "force")
	assert.Contains(t, readFile(t, filepath.Join(dir, "types", "post_type.rb")), "null: false")
}

func TestType_MalformedField(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := cmd.ExecuteWithArgs([]string{"type", "Post", "title", "-d", dir})
	require.Error(t, err)
	assert.True(t, errors.Is(err, typeexpr.ErrMalformedField))
	assert.Contains(t, stderr, "args:1:11")
	assert.Contains(t, stderr, "1 | Post title")
	assert.Contains(t, stderr, "expected name:type")

	assert.NoFileExists(t, filepath.Join(dir, "types", "post_type.rb"))
}

func TestType_InvalidFieldName(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := cmd.ExecuteWithArgs([]string{"type", "Post", "first-name:String", "--sdl", "-d", dir})
	require.Error(t, err)
	assert.True(t, errors.Is(err, typeexpr.ErrMalformedField))
	assert.Contains(t, stderr, "args:1:11")
	assert.Contains(t, stderr, "in field name")

	assert.NoDirExists(t, filepath.Join(dir, "types"))
}

func TestType_InvalidSDLWritesNothing(t *testing.T) {
	dir := t.TempDir()

	_, _, err := cmd.ExecuteWithArgs([]string{"type", "Post", "tags:[Post", "--sdl", "-d", dir})
	require.Error(t, err)
	assert.NoDirExists(t, filepath.Join(dir, "types"))
}

func TestType_MisspeltScalarWarns(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := cmd.ExecuteWithArgs([]string{"type", "Post", "title:Strng", "-d", dir})
	require.NoError(t, err)
	assert.Contains(t, stderr, "warning:")
	assert.Contains(t, stderr, `did you mean "String"?`)
}

func TestType_ZshEscapeHelp(t *testing.T) {
	_, stderr, err := cmd.ExecuteWithArgs([]string{"type", "Post", `title:String\!`, "-d", t.TempDir()})
	require.NoError(t, err)
	assert.Contains(t, stderr, "help:")
	assert.Contains(t, stderr, "shell escaped")
}

func TestType_Schema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.graphql")
	require.NoError(t, os.WriteFile(schemaPath, []byte("type User { id: ID! }\ntype Query { me: User }\n"), 0644))

	_, stderr, err := cmd.ExecuteWithArgs([]string{"type", "Post", "author:User", "editor:Usr", "-d", dir, "--schema", schemaPath})
	require.NoError(t, err)
	assert.NotContains(t, stderr, `field "author"`)
	assert.Contains(t, stderr, `field "editor"`)
	assert.Contains(t, stderr, `did you mean "User"?`)
}

func TestType_MissingSchema(t *testing.T) {
	_, stderr, err := cmd.ExecuteWithArgs([]string{"type", "Post", "-d", t.TempDir(), "--schema", "nope.graphql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file does not exist")
	assert.Contains(t, stderr, "Error:")
}

func TestType_DryRunText(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := cmd.ExecuteWithArgs([]string{"type", "BlogPost", "title:String!", "-d", dir, "--sdl", "--dry-run", "-f", "text"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "# "+filepath.Join(dir, "types", "blog_post_type.rb"))
	assert.Contains(t, stdout, "class BlogPostType < Types::BaseObject")
	assert.Contains(t, stdout, "type BlogPost {\n  title: String!\n}")
	assert.NoDirExists(t, filepath.Join(dir, "types"))
}

func TestType_DryRunJSON(t *testing.T) {
	stdout, _, err := cmd.ExecuteWithArgs([]string{"type", "BlogPost", "title:String!", "tags:[String]", "--dry-run", "-f", "json"})
	require.NoError(t, err)

	var plan struct {
		FileBaseName string `json:"fileBaseName"`
		RubyName     string `json:"rubyName"`
		GraphQLName  string `json:"graphqlName"`
		Path         string `json:"path"`
		Ruby         string `json:"ruby"`
		Fields       []struct {
			Name        string `json:"name"`
			Type        string `json:"type"`
			Null        bool   `json:"null"`
			Declaration string `json:"declaration"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &plan))

	assert.Equal(t, "blog_post_type", plan.FileBaseName)
	assert.Equal(t, "Types::BlogPostType", plan.RubyName)
	assert.Equal(t, "BlogPost", plan.GraphQLName)
	assert.Equal(t, "app/graphql/types/blog_post_type.rb", plan.Path)
	assert.Contains(t, plan.Ruby, "field :tags, [String], null: true")
	require.Len(t, plan.Fields, 2)
	assert.Equal(t, "field :title, String, null: false", plan.Fields[0].Declaration)
	assert.False(t, plan.Fields[0].Null)
	assert.Equal(t, "[String]", plan.Fields[1].Type)
}

func TestType_DryRunPretty(t *testing.T) {
	stdout, _, err := cmd.ExecuteWithArgs([]string{"type", "Post", "title:String!", "--dry-run", "-f", "pretty"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "Types::PostType")
	assert.Contains(t, stdout, "ruby type")
	assert.Contains(t, stdout, "title")
	assert.Contains(t, stdout, "String!")
}

func TestType_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "graphql")
	configPath := filepath.Join(dir, "gqlscaffold.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("directory: "+out+"\nsdl: true\n"), 0644))

	_, _, err := cmd.ExecuteWithArgs([]string{"type", "Post", "--config", configPath})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "types", "post_type.rb"))
	assert.FileExists(t, filepath.Join(out, "types", "post_type.graphql"))
}

func TestType_FlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "gqlscaffold.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("directory: "+filepath.Join(dir, "from-config")+"\n"), 0644))

	flagDir := filepath.Join(dir, "from-flag")
	_, _, err := cmd.ExecuteWithArgs([]string{"type", "Post", "--config", configPath, "-d", flagDir})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(flagDir, "types", "post_type.rb"))
	assert.NoDirExists(t, filepath.Join(dir, "from-config"))
}

func TestType_RequiresTypeName(t *testing.T) {
	_, _, err := cmd.ExecuteWithArgs([]string{"type"})
	assert.Error(t, err)
}

func TestType_InvalidFormat(t *testing.T) {
	_, _, err := cmd.ExecuteWithArgs([]string{"type", "Post", "--dry-run", "-f", "yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestType_DebugLogging(t *testing.T) {
	_, stderr, err := cmd.ExecuteWithArgs([]string{"type", "Post", "-d", t.TempDir(), "-l", "debug"})
	require.NoError(t, err)
	assert.Contains(t, stderr, "file written")
}
