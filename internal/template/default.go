package template

// DefaultTemplate is the built-in commit message template.
// It uses %name% placeholders, one per form field.
const DefaultTemplate = `# %title%

%description%

### Steps to reproduce

%steps%

### Expected behavior

%expected_description%

## Resolution

Explains the state of the system before and after the changes

### Before

%system_before%

### After

%system_after%

### Expectation

%expectation%

### Samples

%samples%

## Security

The security section discusses any security-related impacts that may arise from the newly added authentication system

### Vulnerabilities

%vulnerabilities%

### Quality

%qualities%

### Conformity

%conformity%

### Risk

%risk%

## Tests

### Added

%tests_added%

### Updated

%tests_updated%

### Deleted

%test_deleted%

### Platforms

%tested_platforms%

## Requirements

### BREAKING CHANGES

%breaking_changes%

### Dependencies

%dependencies%

### Packages

%packages%

### Rollback

%rollbacks%

## Database

### Up

%db_up%

### Down

%db_down%

### Changes

%db_changes%

### Why

%why_db_changes%

## Communication

### Authors

%authors%

### Testers

%testers%

### Comments

%comments%

### Notes

%notes%

## Ideas

### News headline

%news_headline%

### Workflow

%workflow%

### Examples

%workflows_samples%

### Technical considerations

%technical_considerations%

## Next

### Description

%next_description%

### Motivation

%next_motivation%

### Why implement it

%next_reasons%

### Related Links

%next_links%

`

// DefaultDocument is the starter document written by "rei gen-template".
// Every field is a list of lines; empty sections are skipped.
const DefaultDocument = `{% autoescape off %}# {{ title|join:" " }}
{% if description %}
{% for line in description %}{{ line }}
{% endfor %}{% endif %}{% if steps %}
### Steps to reproduce

{% for line in steps %}{{ line }}
{% endfor %}{% endif %}{% if expected_description %}
### Expected behavior

{% for line in expected_description %}{{ line }}
{% endfor %}{% endif %}{% if system_before or system_after or expectation or samples %}
## Resolution
{% if system_before %}
### Before

{% for line in system_before %}{{ line }}
{% endfor %}{% endif %}{% if system_after %}
### After

{% for line in system_after %}{{ line }}
{% endfor %}{% endif %}{% if expectation %}
### Expectation

{% for line in expectation %}{{ line }}
{% endfor %}{% endif %}{% if samples %}
### Samples

{% for line in samples %}{{ line }}
{% endfor %}{% endif %}{% endif %}{% if vulnerabilities or qualities or conformity or risk %}
## Security
{% if vulnerabilities %}
### Vulnerabilities

{% for line in vulnerabilities %}- {{ line }}
{% endfor %}{% endif %}{% if qualities %}
### Quality

{% for line in qualities %}{{ line }}
{% endfor %}{% endif %}{% if conformity %}
### Conformity

{% for line in conformity %}{{ line }}
{% endfor %}{% endif %}{% if risk %}
### Risk

{% for line in risk %}{{ line }}
{% endfor %}{% endif %}{% endif %}{% if tests_added or tests_updated or test_deleted or tested_platforms %}
## Tests
{% if tests_added %}
### Added

{% for line in tests_added %}- {{ line }}
{% endfor %}{% endif %}{% if tests_updated %}
### Updated

{% for line in tests_updated %}- {{ line }}
{% endfor %}{% endif %}{% if test_deleted %}
### Deleted

{% for line in test_deleted %}- {{ line }}
{% endfor %}{% endif %}{% if tested_platforms %}
### Platforms

{% for line in tested_platforms %}- {{ line }}
{% endfor %}{% endif %}{% endif %}{% if breaking_changes or dependencies or packages or rollbacks %}
## Requirements
{% if breaking_changes %}
### BREAKING CHANGES

{% for line in breaking_changes %}{{ line }}
{% endfor %}{% endif %}{% if dependencies %}
### Dependencies

{% for line in dependencies %}- {{ line }}
{% endfor %}{% endif %}{% if packages %}
### Packages

{% for line in packages %}- {{ line }}
{% endfor %}{% endif %}{% if rollbacks %}
### Rollback

{% for line in rollbacks %}{{ line }}
{% endfor %}{% endif %}{% endif %}{% if db_up or db_down or db_changes or why_db_changes %}
## Database
{% if db_up %}
### Up

{% for line in db_up %}{{ line }}
{% endfor %}{% endif %}{% if db_down %}
### Down

{% for line in db_down %}{{ line }}
{% endfor %}{% endif %}{% if db_changes %}
### Changes

{% for line in db_changes %}{{ line }}
{% endfor %}{% endif %}{% if why_db_changes %}
### Why

{% for line in why_db_changes %}{{ line }}
{% endfor %}{% endif %}{% endif %}{% if authors or testers or comments or notes %}
## Communication
{% if authors %}
### Authors

{% for line in authors %}- {{ line }}
{% endfor %}{% endif %}{% if testers %}
### Testers

{% for line in testers %}- {{ line }}
{% endfor %}{% endif %}{% if comments %}
### Comments

{% for line in comments %}{{ line }}
{% endfor %}{% endif %}{% if notes %}
### Notes

{% for line in notes %}{{ line }}
{% endfor %}{% endif %}{% endif %}{% if news_headline or workflow or workflows_samples or technical_considerations %}
## Ideas
{% if news_headline %}
### News headline

{% for line in news_headline %}{{ line }}
{% endfor %}{% endif %}{% if workflow %}
### Workflow

{% for line in workflow %}{{ line }}
{% endfor %}{% endif %}{% if workflows_samples %}
### Examples

{% for line in workflows_samples %}{{ line }}
{% endfor %}{% endif %}{% if technical_considerations %}
### Technical considerations

{% for line in technical_considerations %}{{ line }}
{% endfor %}{% endif %}{% endif %}{% if next_description or next_motivation or next_reasons or next_links %}
## Next
{% if next_description %}
### Description

{% for line in next_description %}{{ line }}
{% endfor %}{% endif %}{% if next_motivation %}
### Motivation

{% for line in next_motivation %}{{ line }}
{% endfor %}{% endif %}{% if next_reasons %}
### Why implement it

{% for line in next_reasons %}{{ line }}
{% endfor %}{% endif %}{% if next_links %}
### Related Links

{% for line in next_links %}- {{ line }}
{% endfor %}{% endif %}{% endif %}{% endautoescape %}`
